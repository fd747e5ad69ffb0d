package signing

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/audit"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/metrics"
	"github.com/quillsign/quillsign/internal/signers"
	"github.com/quillsign/quillsign/pkg/clientmeta"
	"github.com/quillsign/quillsign/pkg/repository"
)

type repo struct {
	db      *sql.DB
	fields  fields.System
	audit   audit.System
	metrics *metrics.Collector
	logger  *slog.Logger
}

// New creates a signing repository.
func New(db *sql.DB, fieldSys fields.System, auditSys audit.System, collector *metrics.Collector, logger *slog.Logger) System {
	return &repo{
		db:      db,
		fields:  fieldSys,
		audit:   auditSys,
		metrics: collector,
		logger:  logger.With("system", "signing"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Resolve loads the signing session for a token. The first resolution of a
// sent signer transitions it to viewed; the conditional update makes the
// transition fire exactly once under concurrent resolutions.
func (r *repo) Resolve(ctx context.Context, token string, meta clientmeta.Meta) (*View, error) {
	signer, err := r.findByToken(ctx, r.db, token)
	if err != nil {
		return nil, err
	}

	doc, err := r.viewDocument(ctx, signer.DocumentID)
	if err != nil {
		return nil, err
	}

	docFields, err := r.fields.ListByDocument(ctx, signer.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	if signer.Status == signers.StatusSent {
		res, err := r.db.ExecContext(ctx,
			`UPDATE signers SET status = 'viewed' WHERE id = $1 AND status = 'sent'`,
			signer.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("mark viewed: %w", err)
		}

		if affected, _ := res.RowsAffected(); affected == 1 {
			signer.Status = signers.StatusViewed
			details := fmt.Sprintf("%s (%s) viewed the document", signer.Name, signer.Email)
			r.appendAudit(ctx, audit.AppendCommand{
				DocumentID: signer.DocumentID,
				SignerID:   &signer.ID,
				Action:     audit.ActionViewed,
				Details:    &details,
				IPAddress:  &meta.IPAddress,
				UserAgent:  &meta.UserAgent,
			})
		}
	}

	return &View{
		Signer:   *signer,
		Document: *doc,
		Fields:   docFields,
	}, nil
}

// Submit applies the signer's field values and marks them signed. If this
// signature leaves no unsigned signers on a sent document, the document
// completes in the same transaction; the conditional update guarantees the
// completion fires for exactly one submission.
func (r *repo) Submit(ctx context.Context, token string, cmd SubmitCommand, meta clientmeta.Meta) (*SubmitResult, error) {
	type outcome struct {
		signer    signers.Signer
		completed bool
	}

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (outcome, error) {
		signer, err := r.findByTokenForUpdate(ctx, tx, token)
		if err != nil {
			return outcome{}, err
		}

		if err := lockDocument(ctx, tx, signer.DocumentID); err != nil {
			return outcome{}, err
		}

		switch signer.Status {
		case signers.StatusSigned:
			return outcome{}, ErrAlreadySigned
		case signers.StatusDeclined:
			return outcome{}, ErrAlreadyDeclined
		}

		for _, fv := range cmd.Fields {
			err := repository.ExecExpectOne(ctx, tx,
				`UPDATE signature_fields SET value = $1
				WHERE id = $2 AND document_id = $3 AND (signer_id = $4 OR signer_id IS NULL)`,
				fv.Value, fv.ID, signer.DocumentID, signer.ID,
			)
			if err != nil {
				if err == sql.ErrNoRows {
					return outcome{}, fmt.Errorf("%w: %s", ErrInvalidField, fv.ID)
				}
				return outcome{}, fmt.Errorf("apply field value: %w", err)
			}
		}

		// unassigned fields are fillable by any signer, so an empty
		// required one blocks every submission until someone fills it
		var missing int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM signature_fields
			WHERE document_id = $1 AND (signer_id = $2 OR signer_id IS NULL) AND required
			AND (value IS NULL OR value = '')`,
			signer.DocumentID, signer.ID,
		).Scan(&missing)
		if err != nil {
			return outcome{}, fmt.Errorf("check required fields: %w", err)
		}
		if missing > 0 {
			return outcome{}, fmt.Errorf("%w: %d remaining", ErrMissingRequired, missing)
		}

		err = repository.ExecExpectOne(ctx, tx,
			`UPDATE signers SET status = 'signed', signed_at = NOW(), ip_address = $1, user_agent = $2
			WHERE id = $3`,
			meta.IPAddress, meta.UserAgent, signer.ID,
		)
		if err != nil {
			return outcome{}, fmt.Errorf("mark signed: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE documents SET status = 'completed', updated_at = NOW()
			WHERE id = $1 AND status = 'sent'
			AND NOT EXISTS (
				SELECT 1 FROM signers WHERE document_id = $1 AND status <> 'signed'
			)`,
			signer.DocumentID,
		)
		if err != nil {
			return outcome{}, fmt.Errorf("complete document: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return outcome{}, fmt.Errorf("complete document: %w", err)
		}

		return outcome{signer: *signer, completed: affected == 1}, nil
	})

	if err != nil {
		return nil, err
	}

	signer := result.signer

	details := fmt.Sprintf("%s (%s) signed the document", signer.Name, signer.Email)
	r.appendAudit(ctx, audit.AppendCommand{
		DocumentID: signer.DocumentID,
		SignerID:   &signer.ID,
		Action:     audit.ActionSigned,
		Details:    &details,
		IPAddress:  &meta.IPAddress,
		UserAgent:  &meta.UserAgent,
	})
	r.metrics.RecordSignerSigned()
	r.logger.Info("signer signed", "signer_id", signer.ID, "document_id", signer.DocumentID)

	if result.completed {
		completedDetails := "All signers have signed the document"
		r.appendAudit(ctx, audit.AppendCommand{
			DocumentID: signer.DocumentID,
			Action:     audit.ActionCompleted,
			Details:    &completedDetails,
		})
		r.metrics.RecordDocumentCompleted()
		r.logger.Info("document completed", "document_id", signer.DocumentID)
	}

	return &SubmitResult{Completed: result.completed}, nil
}

// Decline marks the signer declined and, when the document is still out for
// signing, declines the document as well. A completed document is never
// demoted.
func (r *repo) Decline(ctx context.Context, token string, cmd DeclineCommand, meta clientmeta.Meta) error {
	type outcome struct {
		signer           signers.Signer
		documentDeclined bool
	}

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (outcome, error) {
		signer, err := r.findByTokenForUpdate(ctx, tx, token)
		if err != nil {
			return outcome{}, err
		}

		if err := lockDocument(ctx, tx, signer.DocumentID); err != nil {
			return outcome{}, err
		}

		switch signer.Status {
		case signers.StatusSigned:
			return outcome{}, ErrAlreadySigned
		case signers.StatusDeclined:
			return outcome{}, ErrAlreadyDeclined
		}

		err = repository.ExecExpectOne(ctx, tx,
			`UPDATE signers SET status = 'declined' WHERE id = $1`,
			signer.ID,
		)
		if err != nil {
			return outcome{}, fmt.Errorf("mark declined: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE documents SET status = 'declined', updated_at = NOW()
			WHERE id = $1 AND status = 'sent'`,
			signer.DocumentID,
		)
		if err != nil {
			return outcome{}, fmt.Errorf("decline document: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return outcome{}, fmt.Errorf("decline document: %w", err)
		}

		return outcome{signer: *signer, documentDeclined: affected == 1}, nil
	})

	if err != nil {
		return err
	}

	signer := result.signer

	details := fmt.Sprintf("%s (%s) declined to sign", signer.Name, signer.Email)
	if cmd.Reason != nil && *cmd.Reason != "" {
		details = fmt.Sprintf("%s: %s", details, *cmd.Reason)
	}
	r.appendAudit(ctx, audit.AppendCommand{
		DocumentID: signer.DocumentID,
		SignerID:   &signer.ID,
		Action:     audit.ActionDeclined,
		Details:    &details,
		IPAddress:  &meta.IPAddress,
		UserAgent:  &meta.UserAgent,
	})
	r.metrics.RecordSignerDeclined()
	if result.documentDeclined {
		r.metrics.RecordDocumentDeclined()
	}
	r.logger.Info("signer declined", "signer_id", signer.ID, "document_id", signer.DocumentID)

	return nil
}

const signerColumns = "id, document_id, name, email, sign_order, status, token, signed_at, ip_address, user_agent, created_at"

func (r *repo) findByToken(ctx context.Context, q repository.Querier, token string) (*signers.Signer, error) {
	query := fmt.Sprintf(`SELECT %s FROM signers WHERE token = $1`, signerColumns)

	signer, err := repository.QueryOne(ctx, q, query, []any{token}, scanSigner)
	if err != nil {
		return nil, repository.MapError(err, ErrTokenNotFound, ErrTokenNotFound)
	}
	return &signer, nil
}

// lockDocument takes the document row lock for the duration of the
// transaction. Submit and Decline both acquire it before touching signer
// state, so the terminal-status evaluation runs one submission at a time per
// document, each against a snapshot that includes the previous committer's
// signer writes.
func lockDocument(ctx context.Context, tx *sql.Tx, id uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, `SELECT id FROM documents WHERE id = $1 FOR UPDATE`, id); err != nil {
		return fmt.Errorf("lock document: %w", err)
	}
	return nil
}

func (r *repo) findByTokenForUpdate(ctx context.Context, tx *sql.Tx, token string) (*signers.Signer, error) {
	query := fmt.Sprintf(`SELECT %s FROM signers WHERE token = $1 FOR UPDATE`, signerColumns)

	signer, err := repository.QueryOne(ctx, tx, query, []any{token}, scanSigner)
	if err != nil {
		return nil, repository.MapError(err, ErrTokenNotFound, ErrTokenNotFound)
	}
	return &signer, nil
}

func (r *repo) viewDocument(ctx context.Context, id uuid.UUID) (*ViewDocument, error) {
	var d ViewDocument
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, filename, content_type, page_count, status, created_at
		FROM documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Title, &d.Filename, &d.ContentType, &d.PageCount, &d.Status, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return &d, nil
}

func scanSigner(s repository.Scanner) (signers.Signer, error) {
	var sg signers.Signer
	err := s.Scan(
		&sg.ID,
		&sg.DocumentID,
		&sg.Name,
		&sg.Email,
		&sg.SignOrder,
		&sg.Status,
		&sg.Token,
		&sg.SignedAt,
		&sg.IPAddress,
		&sg.UserAgent,
		&sg.CreatedAt,
	)
	return sg, err
}

// appendAudit records an audit entry after the primary transaction has
// committed. Failures are logged and never surfaced to the caller.
func (r *repo) appendAudit(ctx context.Context, cmd audit.AppendCommand) {
	if err := r.audit.Append(ctx, cmd); err != nil {
		r.logger.Error("audit append failed", "document_id", cmd.DocumentID, "action", cmd.Action, "error", err)
	}
}
