package signers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/pkg/query"
	"github.com/quillsign/quillsign/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a signer repository.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "signers"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Signer, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("DocumentId", documentID).
		BuildList()

	result, err := repository.QueryMany(ctx, r.db, q, args, scanSigner)
	if err != nil {
		return nil, fmt.Errorf("query signers: %w", err)
	}

	if result == nil {
		result = []Signer{}
	}
	return result, nil
}

func (r *repo) Add(ctx context.Context, ownerID, documentID uuid.UUID, cmd AddCommand) (*Signer, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}

	q := `INSERT INTO signers(id, document_id, name, email, sign_order)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, document_id, name, email, sign_order, status, token, signed_at, ip_address, user_agent, created_at`

	signer, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Signer, error) {
		if err := checkDraftDocument(ctx, tx, ownerID, documentID); err != nil {
			return Signer{}, err
		}

		// sign_order comes from the document's counter, which only moves
		// forward: removing a signer never frees its order value. The
		// document row lock above serializes concurrent adds.
		var order int
		err := tx.QueryRowContext(ctx,
			`UPDATE documents SET signer_seq = signer_seq + 1 WHERE id = $1 RETURNING signer_seq`,
			documentID,
		).Scan(&order)
		if err != nil {
			return Signer{}, fmt.Errorf("advance signer order: %w", err)
		}

		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), documentID, strings.TrimSpace(cmd.Name), strings.TrimSpace(cmd.Email), order,
		}, scanSigner)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("signer added", "id", signer.ID, "document_id", documentID, "sign_order", signer.SignOrder)
	return &signer, nil
}

func (r *repo) Remove(ctx context.Context, ownerID, documentID, signerID uuid.UUID) error {
	q := `DELETE FROM signers WHERE id = $1 AND document_id = $2`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := checkDraftDocument(ctx, tx, ownerID, documentID); err != nil {
			return struct{}{}, err
		}

		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, signerID, documentID)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("signer removed", "id", signerID, "document_id", documentID)
	return nil
}

func validate(cmd AddCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalid)
	}

	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return fmt.Errorf("%w: email required", ErrInvalid)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: malformed email", ErrInvalid)
	}

	return nil
}

// checkDraftDocument locks the document row and verifies ownership and
// draft status. The lock holds until the surrounding transaction resolves,
// so a concurrent send cannot interleave with signer mutations.
func checkDraftDocument(ctx context.Context, tx *sql.Tx, ownerID, documentID uuid.UUID) error {
	var owner uuid.UUID
	var status string

	err := tx.QueryRowContext(ctx,
		`SELECT owner_id, status FROM documents WHERE id = $1 FOR UPDATE`,
		documentID,
	).Scan(&owner, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("load document: %w", err)
	}

	if owner != ownerID {
		return ErrNotOwner
	}
	if status != "draft" {
		return ErrNotDraft
	}

	return nil
}
