package signers_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/config"
	"github.com/quillsign/quillsign/internal/database"
	"github.com/quillsign/quillsign/internal/signers"
)

// Ordering and lifecycle rules are enforced in the SQL, so these tests run
// against a real Postgres instance. They are skipped unless
// QUILLSIGN_TEST_DATABASE names a scratch database.

func newTestDB(t *testing.T) *sql.DB {
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

	return db
}

func newTestSystem(t *testing.T, db *sql.DB) signers.System {
	t.Helper()
	return signers.New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seedDocument(t *testing.T, db *sql.DB, ownerID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO documents(id, owner_id, title, filename, content_type, size_bytes, storage_key, status)
		VALUES($1, $2, 'Lease Agreement', 'lease.pdf', 'application/pdf', 2048, $3, $4)`,
		id, ownerID, "documents/"+id.String()+"/lease.pdf", status,
	)
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM documents WHERE id = $1`, id) })

	return id
}

func addSigner(t *testing.T, sys signers.System, ownerID, documentID uuid.UUID, name, email string) *signers.Signer {
	t.Helper()

	signer, err := sys.Add(context.Background(), ownerID, documentID, signers.AddCommand{
		Name:  name,
		Email: email,
	})
	if err != nil {
		t.Fatalf("Add(%s) error = %v", name, err)
	}

	return signer
}

func TestAdd_OrderNeverReused(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()
	owner := uuid.New()

	docID := seedDocument(t, db, owner, "draft")

	first := addSigner(t, sys, owner, docID, "Ada Lovelace", "ada@example.com")
	second := addSigner(t, sys, owner, docID, "Grace Hopper", "grace@example.com")

	if first.SignOrder != 1 {
		t.Errorf("first signer order = %d, want 1", first.SignOrder)
	}
	if second.SignOrder != 2 {
		t.Errorf("second signer order = %d, want 2", second.SignOrder)
	}

	if err := sys.Remove(ctx, owner, docID, second.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	// the removed signer's slot stays retired: later additions always sort
	// after everyone who came before
	third := addSigner(t, sys, owner, docID, "Edsger Dijkstra", "edsger@example.com")
	if third.SignOrder != 3 {
		t.Errorf("signer order after removal = %d, want 3", third.SignOrder)
	}

	list, err := sys.ListByDocument(ctx, docID)
	if err != nil {
		t.Fatalf("ListByDocument() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("signers = %d, want 2", len(list))
	}
	if list[0].SignOrder >= list[1].SignOrder {
		t.Errorf("signers out of order: %d, %d", list[0].SignOrder, list[1].SignOrder)
	}
}

func TestAdd_Validation(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()
	owner := uuid.New()

	docID := seedDocument(t, db, owner, "draft")

	tests := []struct {
		name string
		cmd  signers.AddCommand
	}{
		{"missing name", signers.AddCommand{Email: "ada@example.com"}},
		{"missing email", signers.AddCommand{Name: "Ada Lovelace"}},
		{"malformed email", signers.AddCommand{Name: "Ada Lovelace", Email: "not-an-address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sys.Add(ctx, owner, docID, tt.cmd); !errors.Is(err, signers.ErrInvalid) {
				t.Errorf("Add() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestAdd_LifecycleGuards(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()
	owner := uuid.New()

	cmd := signers.AddCommand{Name: "Ada Lovelace", Email: "ada@example.com"}

	sentDoc := seedDocument(t, db, owner, "sent")
	if _, err := sys.Add(ctx, owner, sentDoc, cmd); !errors.Is(err, signers.ErrNotDraft) {
		t.Errorf("Add() on sent document error = %v, want ErrNotDraft", err)
	}

	draftDoc := seedDocument(t, db, owner, "draft")
	if _, err := sys.Add(ctx, uuid.New(), draftDoc, cmd); !errors.Is(err, signers.ErrNotOwner) {
		t.Errorf("Add() by non-owner error = %v, want ErrNotOwner", err)
	}

	if _, err := sys.Add(ctx, owner, uuid.New(), cmd); !errors.Is(err, signers.ErrDocumentNotFound) {
		t.Errorf("Add() on missing document error = %v, want ErrDocumentNotFound", err)
	}
}
