package signing

import (
	"context"

	"github.com/quillsign/quillsign/pkg/clientmeta"
)

// System defines the signer-facing protocol operations. Every operation is
// addressed by token; client metadata is recorded with the resulting audit
// entries.
type System interface {
	Handler() *Handler
	Resolve(ctx context.Context, token string, meta clientmeta.Meta) (*View, error)
	Submit(ctx context.Context, token string, cmd SubmitCommand, meta clientmeta.Meta) (*SubmitResult, error)
	Decline(ctx context.Context, token string, cmd DeclineCommand, meta clientmeta.Meta) error
}
