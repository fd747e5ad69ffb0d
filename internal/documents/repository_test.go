package documents_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/audit"
	"github.com/quillsign/quillsign/internal/config"
	"github.com/quillsign/quillsign/internal/database"
	"github.com/quillsign/quillsign/internal/documents"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/metrics"
	"github.com/quillsign/quillsign/internal/signers"
	"github.com/quillsign/quillsign/internal/storage"
	"github.com/quillsign/quillsign/pkg/clientmeta"
	"github.com/quillsign/quillsign/pkg/pagination"
	"github.com/quillsign/quillsign/pkg/tokens"
)

// Lifecycle guards live in the SQL, so these tests run against a real
// Postgres instance. They are skipped unless QUILLSIGN_TEST_DATABASE names a
// scratch database; connection details come from the DATABASE_* variables.

var testMeta = clientmeta.Meta{IPAddress: "203.0.113.7", UserAgent: "test-agent"}

type testEnv struct {
	db      *sql.DB
	sys     documents.System
	signers signers.System
	fields  fields.System
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := os.Getenv("QUILLSIGN_TEST_DATABASE")
	if name == "" {
		t.Skip("QUILLSIGN_TEST_DATABASE not set")
	}

	cfg := &config.DatabaseConfig{Name: name, User: "quillsign", Password: "quillsign"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("database config: %v", err)
	}
	if err := database.Migrate(cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.New(&config.StorageConfig{BasePath: t.TempDir()}, logger)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	signerSys := signers.New(db, logger)
	fieldSys := fields.New(db, logger)
	auditSys := audit.New(db, logger)

	sys := documents.New(
		db, store, signerSys, fieldSys, auditSys,
		tokens.NewIssuer(), metrics.NewCollector(), logger,
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)

	return &testEnv{db: db, sys: sys, signers: signerSys, fields: fieldSys}
}

func (e *testEnv) createDocument(t *testing.T, ownerID uuid.UUID) *documents.Document {
	t.Helper()

	pageCount := 2
	doc, err := e.sys.Create(context.Background(), documents.CreateCommand{
		OwnerID:     ownerID,
		Title:       "Lease Agreement",
		Filename:    "lease.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		PageCount:   &pageCount,
		Data:        []byte("%PDF-1.7 test"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { e.db.Exec(`DELETE FROM documents WHERE id = $1`, doc.ID) })

	return doc
}

func (e *testEnv) setStatus(t *testing.T, id uuid.UUID, status string) {
	t.Helper()

	if _, err := e.db.Exec(`UPDATE documents SET status = $1 WHERE id = $2`, status, id); err != nil {
		t.Fatalf("set status: %v", err)
	}
}

func TestUpdate_DraftOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()

	doc := env.createDocument(t, owner)

	updated, err := env.sys.Update(ctx, owner, doc.ID, documents.UpdateCommand{Title: "Renewed Lease"})
	if err != nil {
		t.Fatalf("Update() on draft error = %v", err)
	}
	if updated.Title != "Renewed Lease" {
		t.Errorf("Update() title = %q, want %q", updated.Title, "Renewed Lease")
	}

	for _, status := range []string{"sent", "completed", "declined"} {
		env.setStatus(t, doc.ID, status)

		_, err := env.sys.Update(ctx, owner, doc.ID, documents.UpdateCommand{Title: "Too Late"})
		if !errors.Is(err, documents.ErrNotDraft) {
			t.Errorf("Update() on %s document error = %v, want ErrNotDraft", status, err)
		}
	}
}

func TestSend_Preconditions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()

	doc := env.createDocument(t, owner)

	_, err := env.sys.Send(ctx, owner, doc.ID, "http://localhost:8080", testMeta)
	if !errors.Is(err, documents.ErrNoSigners) {
		t.Fatalf("Send() without signers error = %v, want ErrNoSigners", err)
	}

	signer, err := env.signers.Add(ctx, owner, doc.ID, signers.AddCommand{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("Add() signer error = %v", err)
	}

	_, err = env.sys.Send(ctx, owner, doc.ID, "http://localhost:8080", testMeta)
	if !errors.Is(err, documents.ErrNoFields) {
		t.Fatalf("Send() without fields error = %v, want ErrNoFields", err)
	}

	_, err = env.fields.Place(ctx, owner, doc.ID, fields.PlaceCommand{
		SignerID:   &signer.ID,
		Type:       fields.TypeSignature,
		PageNumber: 1,
		X:          10,
		Y:          10,
	})
	if err != nil {
		t.Fatalf("Place() field error = %v", err)
	}

	result, err := env.sys.Send(ctx, owner, doc.ID, "http://localhost:8080", testMeta)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(result.SigningLinks) != 1 {
		t.Fatalf("Send() links = %d, want 1", len(result.SigningLinks))
	}
	if result.Document.Status != documents.StatusSent {
		t.Errorf("Send() document status = %q, want sent", result.Document.Status)
	}

	_, err = env.sys.Send(ctx, owner, doc.ID, "http://localhost:8080", testMeta)
	if !errors.Is(err, documents.ErrNotDraft) {
		t.Errorf("Send() on sent document error = %v, want ErrNotDraft", err)
	}
}

func TestUpdate_WrongOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doc := env.createDocument(t, uuid.New())

	_, err := env.sys.Update(ctx, uuid.New(), doc.ID, documents.UpdateCommand{Title: "Hijacked"})
	if !errors.Is(err, documents.ErrNotOwner) {
		t.Errorf("Update() by non-owner error = %v, want ErrNotOwner", err)
	}
}
