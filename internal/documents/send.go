package documents

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/audit"
	"github.com/quillsign/quillsign/pkg/clientmeta"
	"github.com/quillsign/quillsign/pkg/repository"
)

// Send routes a draft document for signature: the document transitions to
// sent, every signer receives a freshly minted access token, and the
// per-signer signing links are returned. A document with no signers or no
// placed fields cannot be sent. The transition and token mints commit
// atomically; a document that is no longer a draft is left untouched.
func (r *repo) Send(ctx context.Context, ownerID, id uuid.UUID, origin string, meta clientmeta.Meta) (*SendResult, error) {
	if _, err := r.find(ctx, ownerID, id); err != nil {
		return nil, err
	}

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*SendResult, error) {
		q := fmt.Sprintf(`UPDATE documents SET status = 'sent', updated_at = NOW()
			WHERE id = $1 AND status = 'draft'
			RETURNING %s`, returningColumns)

		doc, err := repository.QueryOne(ctx, tx, q, []any{id}, scanDocument)
		if err != nil {
			// existence and ownership are already verified; no row
			// means the document left the draft state
			return nil, repository.MapError(err, ErrNotDraft, ErrDuplicate)
		}

		pending, err := repository.QueryMany(ctx, tx,
			`SELECT id, name, email FROM signers WHERE document_id = $1 ORDER BY sign_order FOR UPDATE`,
			[]any{id}, scanPendingSigner,
		)
		if err != nil {
			return nil, fmt.Errorf("query signers: %w", err)
		}

		if len(pending) == 0 {
			return nil, ErrNoSigners
		}

		var fieldCount int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM signature_fields WHERE document_id = $1`,
			id,
		).Scan(&fieldCount)
		if err != nil {
			return nil, fmt.Errorf("count fields: %w", err)
		}
		if fieldCount == 0 {
			return nil, ErrNoFields
		}

		links := make([]SigningLink, 0, len(pending))
		for _, s := range pending {
			token, err := r.tokens.Issue()
			if err != nil {
				return nil, fmt.Errorf("issue token: %w", err)
			}

			err = repository.ExecExpectOne(ctx, tx,
				`UPDATE signers SET token = $1, status = 'sent' WHERE id = $2`,
				token, s.ID,
			)
			if err != nil {
				return nil, fmt.Errorf("assign token: %w", err)
			}

			links = append(links, SigningLink{
				Name:  s.Name,
				Email: s.Email,
				URL:   clientmeta.SigningURL(origin, token),
			})
		}

		return &SendResult{Document: &doc, SigningLinks: links}, nil
	})

	if err != nil {
		return nil, err
	}

	emails := make([]string, len(result.SigningLinks))
	for i, link := range result.SigningLinks {
		emails[i] = link.Email
	}
	details := fmt.Sprintf("Sent to %d signer(s): %s", len(emails), strings.Join(emails, ", "))

	cmd := audit.AppendCommand{
		DocumentID: id,
		Action:     audit.ActionSent,
		Details:    &details,
		IPAddress:  &meta.IPAddress,
		UserAgent:  &meta.UserAgent,
	}
	if err := r.audit.Append(ctx, cmd); err != nil {
		r.logger.Error("audit append failed", "document_id", id, "action", cmd.Action, "error", err)
	}

	r.metrics.RecordDocumentSent()
	r.logger.Info("document sent", "id", id, "signers", len(result.SigningLinks))
	return result, nil
}

type pendingSigner struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func scanPendingSigner(s repository.Scanner) (pendingSigner, error) {
	var p pendingSigner
	err := s.Scan(&p.ID, &p.Name, &p.Email)
	return p, err
}
