package signers

import (
	"context"

	"github.com/google/uuid"
)

// System defines signer registry operations. Add and Remove are scoped to
// the acting owner and only permitted while the document is a draft;
// ListByDocument serves internal composition and assumes access has already
// been verified.
type System interface {
	Handler() *Handler
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Signer, error)
	Add(ctx context.Context, ownerID, documentID uuid.UUID, cmd AddCommand) (*Signer, error)
	Remove(ctx context.Context, ownerID, documentID, signerID uuid.UUID) error
}
