package audit

import (
	"context"

	"github.com/google/uuid"
)

// System defines the audit trail operations. Append is used internally by
// the lifecycle systems; List serves the owner-facing trail endpoint.
type System interface {
	Handler() *Handler
	Append(ctx context.Context, cmd AppendCommand) error
	List(ctx context.Context, ownerID, documentID uuid.UUID) ([]Entry, error)
}
