package fields

import "github.com/quillsign/quillsign/pkg/query"

var projection = query.NewProjectionMap("public", "signature_fields", "f").
	Project("id", "Id").
	Project("document_id", "DocumentId").
	Project("signer_id", "SignerId").
	Project("field_type", "Type").
	Project("page_number", "PageNumber").
	Project("x_position", "X").
	Project("y_position", "Y").
	Project("width", "Width").
	Project("height", "Height").
	Project("value", "Value").
	Project("required", "Required").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "PageNumber"}
