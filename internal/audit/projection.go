package audit

import "github.com/quillsign/quillsign/pkg/query"

var projection = query.NewProjectionMap("public", "audit_logs", "a").
	Project("id", "Id").
	Project("document_id", "DocumentId").
	Project("signer_id", "SignerId").
	Project("action", "Action").
	Project("details", "Details").
	Project("ip_address", "IpAddress").
	Project("user_agent", "UserAgent").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
