package documents

import (
	"context"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/pkg/clientmeta"
	"github.com/quillsign/quillsign/pkg/pagination"
)

// System defines the owner-facing document lifecycle operations. All
// operations except Create are scoped to the acting owner; acting on
// another owner's document fails with ErrNotOwner.
type System interface {
	Handler(maxUploadSize int64, defaultOrigin string) *Handler
	List(ctx context.Context, ownerID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error)
	Find(ctx context.Context, ownerID, id uuid.UUID) (*Detail, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, cmd UpdateCommand) (*Document, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Send(ctx context.Context, ownerID, id uuid.UUID, origin string, meta clientmeta.Meta) (*SendResult, error)
}
