package audit

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

// New creates an audit repository.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "audit"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Append(ctx context.Context, cmd AppendCommand) error {
	q := `INSERT INTO audit_logs(id, document_id, signer_id, action, details, ip_address, user_agent)
		VALUES($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, q,
		uuid.New(), cmd.DocumentID, cmd.SignerID, cmd.Action, cmd.Details, cmd.IPAddress, cmd.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}

	return nil
}

func (r *repo) List(ctx context.Context, ownerID, documentID uuid.UUID) ([]Entry, error) {
	if err := checkOwnership(ctx, r.db, ownerID, documentID); err != nil {
		return nil, err
	}

	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("DocumentId", documentID).
		BuildList()

	entries, err := repository.QueryMany(ctx, r.db, q, args, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}

	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func checkOwnership(ctx context.Context, db *sql.DB, ownerID, documentID uuid.UUID) error {
	var owner uuid.UUID
	err := db.QueryRowContext(ctx, `SELECT owner_id FROM documents WHERE id = $1`, documentID).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("load document owner: %w", err)
	}

	if owner != ownerID {
		return ErrNotOwner
	}
	return nil
}
