package main

import (
	"github.com/quillsign/quillsign/internal/audit"
	"github.com/quillsign/quillsign/internal/documents"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/signers"
	"github.com/quillsign/quillsign/internal/signing"
)

// Domain holds the constructed domain systems.
type Domain struct {
	Documents documents.System
	Signers   signers.System
	Fields    fields.System
	Audit     audit.System
	Signing   signing.System
}

// NewDomain wires the domain systems against the shared runtime.
func NewDomain(runtime *Runtime) *Domain {
	signerSys := signers.New(runtime.DB, runtime.Logger)
	fieldSys := fields.New(runtime.DB, runtime.Logger)
	auditSys := audit.New(runtime.DB, runtime.Logger)

	documentSys := documents.New(
		runtime.DB,
		runtime.Storage,
		signerSys,
		fieldSys,
		auditSys,
		runtime.Tokens,
		runtime.Metrics,
		runtime.Logger,
		runtime.Pagination,
	)

	signingSys := signing.New(
		runtime.DB,
		fieldSys,
		auditSys,
		runtime.Metrics,
		runtime.Logger,
	)

	return &Domain{
		Documents: documentSys,
		Signers:   signerSys,
		Fields:    fieldSys,
		Audit:     auditSys,
		Signing:   signingSys,
	}
}
