package signing_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/audit"
	"github.com/quillsign/quillsign/internal/config"
	"github.com/quillsign/quillsign/internal/database"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/metrics"
	"github.com/quillsign/quillsign/internal/signing"
	"github.com/quillsign/quillsign/pkg/clientmeta"
)

// These tests exercise the token-addressed protocol against a real Postgres
// instance, since the transition guarantees live in the SQL. They are skipped
// unless QUILLSIGN_TEST_DATABASE names a scratch database; connection details
// come from the usual DATABASE_* variables.

var testMeta = clientmeta.Meta{IPAddress: "203.0.113.7", UserAgent: "test-agent"}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

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

func newTestSystem(t *testing.T, db *sql.DB) signing.System {
	t.Helper()

	logger := testLogger()
	return signing.New(db, fields.New(db, logger), audit.New(db, logger), metrics.NewCollector(), logger)
}

func seedDocument(t *testing.T, db *sql.DB, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO documents(id, owner_id, title, filename, content_type, size_bytes, storage_key, status)
		VALUES($1, $2, 'Lease Agreement', 'lease.pdf', 'application/pdf', 2048, $3, $4)`,
		id, uuid.New(), "documents/"+id.String()+"/lease.pdf", status,
	)
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM documents WHERE id = $1`, id) })

	return id
}

func seedSigner(t *testing.T, db *sql.DB, documentID uuid.UUID, order int, status string) (uuid.UUID, string) {
	t.Helper()

	id := uuid.New()
	token := "tok-" + id.String()
	_, err := db.Exec(
		`INSERT INTO signers(id, document_id, name, email, sign_order, status, token)
		VALUES($1, $2, $3, $4, $5, $6, $7)`,
		id, documentID, "Signer "+id.String()[:8], id.String()[:8]+"@example.com", order, status, token,
	)
	if err != nil {
		t.Fatalf("seed signer: %v", err)
	}

	return id, token
}

func seedField(t *testing.T, db *sql.DB, documentID uuid.UUID, signerID *uuid.UUID, required bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO signature_fields(id, document_id, signer_id, field_type, page_number, x_position, y_position, width, height, required)
		VALUES($1, $2, $3, 'signature', 1, 10, 10, 200, 60, $4)`,
		id, documentID, signerID, required,
	)
	if err != nil {
		t.Fatalf("seed field: %v", err)
	}

	return id
}

func auditCount(t *testing.T, db *sql.DB, documentID uuid.UUID, action string) int {
	t.Helper()

	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM audit_logs WHERE document_id = $1 AND action = $2`,
		documentID, action,
	).Scan(&count)
	if err != nil {
		t.Fatalf("count audit entries: %v", err)
	}

	return count
}

func documentStatus(t *testing.T, db *sql.DB, id uuid.UUID) string {
	t.Helper()

	var status string
	if err := db.QueryRow(`SELECT status FROM documents WHERE id = $1`, id).Scan(&status); err != nil {
		t.Fatalf("load document status: %v", err)
	}

	return status
}

func signerStatus(t *testing.T, db *sql.DB, id uuid.UUID) string {
	t.Helper()

	var status string
	if err := db.QueryRow(`SELECT status FROM signers WHERE id = $1`, id).Scan(&status); err != nil {
		t.Fatalf("load signer status: %v", err)
	}

	return status
}

func submitCommand(fieldIDs ...uuid.UUID) signing.SubmitCommand {
	value := "signed-value"
	cmd := signing.SubmitCommand{}
	for _, id := range fieldIDs {
		cmd.Fields = append(cmd.Fields, signing.FieldValue{ID: id, Value: &value})
	}
	return cmd
}

func TestResolve_ViewTransitionFiresOnce(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()

	docID := seedDocument(t, db, "sent")
	signerID, token := seedSigner(t, db, docID, 1, "sent")
	seedField(t, db, docID, &signerID, false)

	for i := range 2 {
		view, err := sys.Resolve(ctx, token, testMeta)
		if err != nil {
			t.Fatalf("Resolve() #%d error = %v", i+1, err)
		}
		if view.Signer.Status != "viewed" {
			t.Errorf("Resolve() #%d signer status = %q, want viewed", i+1, view.Signer.Status)
		}
	}

	if got := signerStatus(t, db, signerID); got != "viewed" {
		t.Errorf("signer status = %q, want viewed", got)
	}
	if got := auditCount(t, db, docID, audit.ActionViewed); got != 1 {
		t.Errorf("viewed audit entries = %d, want 1", got)
	}
}

func TestSubmit_ConcurrentFinalSigners(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()

	docID := seedDocument(t, db, "sent")
	signerA, tokenA := seedSigner(t, db, docID, 1, "viewed")
	signerB, tokenB := seedSigner(t, db, docID, 2, "viewed")
	fieldA := seedField(t, db, docID, &signerA, true)
	fieldB := seedField(t, db, docID, &signerB, true)

	type submission struct {
		result *signing.SubmitResult
		err    error
	}
	results := make([]submission, 2)

	var wg sync.WaitGroup
	for i, sub := range []struct {
		token string
		field uuid.UUID
	}{
		{tokenA, fieldA},
		{tokenB, fieldB},
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := sys.Submit(ctx, sub.token, submitCommand(sub.field), testMeta)
			results[i] = submission{result, err}
		}()
	}
	wg.Wait()

	completed := 0
	for i, sub := range results {
		if sub.err != nil {
			t.Fatalf("Submit() #%d error = %v", i+1, sub.err)
		}
		if sub.result.Completed {
			completed++
		}
	}

	if completed != 1 {
		t.Errorf("completed submissions = %d, want exactly 1", completed)
	}
	if got := documentStatus(t, db, docID); got != "completed" {
		t.Errorf("document status = %q, want completed", got)
	}
	if got := auditCount(t, db, docID, audit.ActionCompleted); got != 1 {
		t.Errorf("completed audit entries = %d, want 1", got)
	}
}

func TestDecline_TerminatesDocument(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()

	docID := seedDocument(t, db, "sent")
	signerA, tokenA := seedSigner(t, db, docID, 1, "viewed")
	signerB, tokenB := seedSigner(t, db, docID, 2, "viewed")
	fieldA := seedField(t, db, docID, &signerA, true)
	seedField(t, db, docID, &signerB, true)

	reason := "not applicable"
	if err := sys.Decline(ctx, tokenB, signing.DeclineCommand{Reason: &reason}, testMeta); err != nil {
		t.Fatalf("Decline() error = %v", err)
	}

	if got := documentStatus(t, db, docID); got != "declined" {
		t.Errorf("document status = %q, want declined", got)
	}
	if got := signerStatus(t, db, signerB); got != "declined" {
		t.Errorf("declining signer status = %q, want declined", got)
	}

	// the other signer's own submission still lands, but the document is
	// terminal and must not complete
	result, err := sys.Submit(ctx, tokenA, submitCommand(fieldA), testMeta)
	if err != nil {
		t.Fatalf("Submit() after decline error = %v", err)
	}
	if result.Completed {
		t.Error("Submit() after decline reported completion")
	}
	if got := signerStatus(t, db, signerA); got != "signed" {
		t.Errorf("submitting signer status = %q, want signed", got)
	}
	if got := documentStatus(t, db, docID); got != "declined" {
		t.Errorf("document status after late submit = %q, want declined", got)
	}
}

func TestSubmit_TerminalSignerStates(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()

	docID := seedDocument(t, db, "sent")
	_, signedToken := seedSigner(t, db, docID, 1, "signed")
	_, declinedToken := seedSigner(t, db, docID, 2, "declined")

	if _, err := sys.Submit(ctx, signedToken, submitCommand(), testMeta); !errors.Is(err, signing.ErrAlreadySigned) {
		t.Errorf("Submit() on signed signer error = %v, want ErrAlreadySigned", err)
	}
	if _, err := sys.Submit(ctx, declinedToken, submitCommand(), testMeta); !errors.Is(err, signing.ErrAlreadyDeclined) {
		t.Errorf("Submit() on declined signer error = %v, want ErrAlreadyDeclined", err)
	}
	if err := sys.Decline(ctx, signedToken, signing.DeclineCommand{}, testMeta); !errors.Is(err, signing.ErrAlreadySigned) {
		t.Errorf("Decline() on signed signer error = %v, want ErrAlreadySigned", err)
	}
}

func TestSubmit_RequiredSharedFieldBlocks(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()

	docID := seedDocument(t, db, "sent")
	_, token := seedSigner(t, db, docID, 1, "viewed")
	sharedField := seedField(t, db, docID, nil, true)

	if _, err := sys.Submit(ctx, token, submitCommand(), testMeta); !errors.Is(err, signing.ErrMissingRequired) {
		t.Fatalf("Submit() without shared value error = %v, want ErrMissingRequired", err)
	}

	result, err := sys.Submit(ctx, token, submitCommand(sharedField), testMeta)
	if err != nil {
		t.Fatalf("Submit() with shared value error = %v", err)
	}
	if !result.Completed {
		t.Error("Submit() Completed = false, want true for the only signer")
	}
}

func TestSubmit_ForeignField(t *testing.T) {
	db := newTestDB(t)
	sys := newTestSystem(t, db)
	ctx := context.Background()

	docID := seedDocument(t, db, "sent")
	signerA, tokenA := seedSigner(t, db, docID, 1, "viewed")
	signerB, _ := seedSigner(t, db, docID, 2, "viewed")
	seedField(t, db, docID, &signerA, false)
	foreignField := seedField(t, db, docID, &signerB, true)

	if _, err := sys.Submit(ctx, tokenA, submitCommand(foreignField), testMeta); !errors.Is(err, signing.ErrInvalidField) {
		t.Errorf("Submit() with another signer's field error = %v, want ErrInvalidField", err)
	}
}
