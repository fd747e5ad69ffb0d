package signers

import "github.com/quillsign/quillsign/pkg/query"

var projection = query.NewProjectionMap("public", "signers", "s").
	Project("id", "Id").
	Project("document_id", "DocumentId").
	Project("name", "Name").
	Project("email", "Email").
	Project("sign_order", "SignOrder").
	Project("status", "Status").
	Project("token", "Token").
	Project("signed_at", "SignedAt").
	Project("ip_address", "IpAddress").
	Project("user_agent", "UserAgent").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "SignOrder"}
