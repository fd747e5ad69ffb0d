package fields

import (
	"context"

	"github.com/google/uuid"
)

// System defines field placement operations. Place and Remove are scoped to
// the acting owner and only permitted while the document is a draft;
// ListByDocument serves internal composition and assumes access has already
// been verified.
type System interface {
	Handler() *Handler
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Field, error)
	List(ctx context.Context, ownerID, documentID uuid.UUID) ([]Field, error)
	Place(ctx context.Context, ownerID, documentID uuid.UUID, cmd PlaceCommand) (*Field, error)
	Remove(ctx context.Context, ownerID, documentID, fieldID uuid.UUID) error
}
