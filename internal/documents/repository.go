package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/audit"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/metrics"
	"github.com/quillsign/quillsign/internal/signers"
	"github.com/quillsign/quillsign/internal/storage"
	"github.com/quillsign/quillsign/pkg/pagination"
	"github.com/quillsign/quillsign/pkg/query"
	"github.com/quillsign/quillsign/pkg/repository"
	"github.com/quillsign/quillsign/pkg/tokens"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	signers    signers.System
	fields     fields.System
	audit      audit.System
	tokens     tokens.Issuer
	metrics    *metrics.Collector
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository with database and blob storage
// integration. Signer and field systems are used to compose document
// details; the token issuer mints signer credentials at send time.
func New(
	db *sql.DB,
	store storage.System,
	signerSys signers.System,
	fieldSys fields.System,
	auditSys audit.System,
	issuer tokens.Issuer,
	collector *metrics.Collector,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		signers:    signerSys,
		fields:     fieldSys,
		audit:      auditSys,
		tokens:     issuer,
		metrics:    collector,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64, defaultOrigin string) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize, defaultOrigin)
}

func (r *repo) List(ctx context.Context, ownerID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("OwnerId", ownerID).
		WhereSearch(page.Search, "Title", "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, ownerID, id uuid.UUID) (*Detail, error) {
	doc, err := r.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	docSigners, err := r.signers.ListByDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list signers: %w", err)
	}

	docFields, err := r.fields.ListByDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	return &Detail{
		Document: *doc,
		Signers:  docSigners,
		Fields:   docFields,
	}, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	id := uuid.New()
	storageKey := buildStorageKey(id, cmd.Filename)

	if err := r.storage.Store(ctx, storageKey, cmd.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	q := fmt.Sprintf(`INSERT INTO documents(id, owner_id, title, filename, content_type, size_bytes, page_count, storage_key)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, returningColumns)

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.OwnerID, cmd.Title, cmd.Filename, cmd.ContentType, cmd.SizeBytes, cmd.PageCount, storageKey,
		}, scanDocument)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, storageKey); delErr != nil {
			r.logger.Error("cleanup failed after db error", "storage_key", storageKey, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document created", "id", doc.ID, "title", doc.Title, "storage_key", storageKey)
	return &doc, nil
}

func (r *repo) Update(ctx context.Context, ownerID, id uuid.UUID, cmd UpdateCommand) (*Document, error) {
	if _, err := r.find(ctx, ownerID, id); err != nil {
		return nil, err
	}

	// existence and ownership are verified above; a routed or terminal
	// document accepts no owner edits, so no row means not draft
	q := fmt.Sprintf(`UPDATE documents SET title = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'draft'
		RETURNING %s`, returningColumns)

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Title, id}, scanDocument)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotDraft, ErrDuplicate)
	}

	r.logger.Info("document updated", "id", doc.ID, "title", doc.Title)
	return &doc, nil
}

func (r *repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	doc, err := r.find(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	if doc.Status != StatusDraft {
		return ErrNotDraft
	}

	q := `DELETE FROM documents WHERE id = $1 AND status = 'draft'`
	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotDraft, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, doc.StorageKey); err != nil {
		r.logger.Error("storage cleanup failed", "storage_key", doc.StorageKey, "error", err)
	}

	r.logger.Info("document deleted", "id", id)
	return nil
}

// find loads a document and verifies the acting owner.
func (r *repo) find(ctx context.Context, ownerID, id uuid.UUID) (*Document, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if doc.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return &doc, nil
}

const returningColumns = "id, owner_id, title, filename, content_type, size_bytes, page_count, storage_key, status, created_at, updated_at"

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("documents/%s/%s", id.String(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}
