package fields

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/pkg/query"
	"github.com/quillsign/quillsign/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a field repository.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "fields"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Field, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("DocumentId", documentID).
		BuildList()

	result, err := repository.QueryMany(ctx, r.db, q, args, scanField)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}

	if result == nil {
		result = []Field{}
	}
	return result, nil
}

func (r *repo) List(ctx context.Context, ownerID, documentID uuid.UUID) ([]Field, error) {
	var owner uuid.UUID
	err := r.db.QueryRowContext(ctx, `SELECT owner_id FROM documents WHERE id = $1`, documentID).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("load document owner: %w", err)
	}
	if owner != ownerID {
		return nil, ErrNotOwner
	}

	return r.ListByDocument(ctx, documentID)
}

func (r *repo) Place(ctx context.Context, ownerID, documentID uuid.UUID, cmd PlaceCommand) (*Field, error) {
	q := `INSERT INTO signature_fields(id, document_id, signer_id, field_type, page_number, x_position, y_position, width, height, required)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, document_id, signer_id, field_type, page_number, x_position, y_position, width, height, value, required, created_at`

	field, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Field, error) {
		pageCount, err := checkDraftDocument(ctx, tx, ownerID, documentID)
		if err != nil {
			return Field{}, err
		}

		if err := validate(&cmd, pageCount); err != nil {
			return Field{}, err
		}

		if cmd.SignerID != nil {
			if err := checkSigner(ctx, tx, documentID, *cmd.SignerID); err != nil {
				return Field{}, err
			}
		}

		width, height := cmd.Type.DefaultSize()
		if cmd.Width != nil {
			width = *cmd.Width
		}
		if cmd.Height != nil {
			height = *cmd.Height
		}

		required := true
		if cmd.Required != nil {
			required = *cmd.Required
		}

		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), documentID, cmd.SignerID, cmd.Type, cmd.PageNumber,
			cmd.X, cmd.Y, width, height, required,
		}, scanField)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("field placed", "id", field.ID, "document_id", documentID, "type", field.Type, "page", field.PageNumber)
	return &field, nil
}

func (r *repo) Remove(ctx context.Context, ownerID, documentID, fieldID uuid.UUID) error {
	q := `DELETE FROM signature_fields WHERE id = $1 AND document_id = $2`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := checkDraftDocument(ctx, tx, ownerID, documentID); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, fieldID, documentID)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("field removed", "id", fieldID, "document_id", documentID)
	return nil
}

func validate(cmd *PlaceCommand, pageCount *int) error {
	if !cmd.Type.Valid() {
		return fmt.Errorf("%w: unsupported field type %q", ErrInvalid, cmd.Type)
	}

	if cmd.PageNumber < 1 {
		return fmt.Errorf("%w: page_number must be positive", ErrInvalid)
	}
	if pageCount != nil && cmd.PageNumber > *pageCount {
		return fmt.Errorf("%w: page_number %d exceeds page count %d", ErrInvalid, cmd.PageNumber, *pageCount)
	}

	if cmd.X < 0 || cmd.X > 100 || cmd.Y < 0 || cmd.Y > 100 {
		return fmt.Errorf("%w: position must be within 0-100 percent", ErrInvalid)
	}

	if cmd.Width != nil && *cmd.Width <= 0 {
		return fmt.Errorf("%w: width must be positive", ErrInvalid)
	}
	if cmd.Height != nil && *cmd.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalid)
	}

	return nil
}

func checkDraftDocument(ctx context.Context, tx *sql.Tx, ownerID, documentID uuid.UUID) (*int, error) {
	var owner uuid.UUID
	var status string
	var pageCount *int

	err := tx.QueryRowContext(ctx,
		`SELECT owner_id, status, page_count FROM documents WHERE id = $1 FOR UPDATE`,
		documentID,
	).Scan(&owner, &status, &pageCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("load document: %w", err)
	}

	if owner != ownerID {
		return nil, ErrNotOwner
	}
	if status != "draft" {
		return nil, ErrNotDraft
	}

	return pageCount, nil
}

func checkSigner(ctx context.Context, tx *sql.Tx, documentID, signerID uuid.UUID) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM signers WHERE id = $1 AND document_id = $2)`,
		signerID, documentID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check signer: %w", err)
	}

	if !exists {
		return ErrSignerNotFound
	}
	return nil
}
