package audit

import "github.com/quillsign/quillsign/pkg/openapi"

type spec struct {
	List *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List audit entries",
		Description: "List the audit trail for a document, newest first",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Audit entries", "AuditEntryList"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"AuditEntry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"document_id": {Type: "string", Format: "uuid"},
				"signer_id":   {Type: "string", Format: "uuid"},
				"action":      {Type: "string", Description: "What happened"},
				"details":     {Type: "string", Description: "Human-readable event details"},
				"ip_address":  {Type: "string", Description: "Client address the event originated from"},
				"user_agent":  {Type: "string"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"AuditEntryList": {
			Type:  "array",
			Items: openapi.SchemaRef("AuditEntry"),
		},
	}
}
