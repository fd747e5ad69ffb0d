package signers

import "github.com/quillsign/quillsign/pkg/openapi"

type spec struct {
	Add    *openapi.Operation
	Remove *openapi.Operation
}

var Spec = spec{
	Add: &openapi.Operation{
		Summary:     "Add signer",
		Description: "Attach a signer to a draft document. Sign order is assigned automatically.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("AddSignerCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Signer added", "Signer"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Remove: &openapi.Operation{
		Summary:     "Remove signer",
		Description: "Detach a signer from a draft document. Fields assigned to the signer are removed with it.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.PathParam("signerId", "Signer ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Signer removed"},
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Signer": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"document_id": {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"email":       {Type: "string"},
				"sign_order":  {Type: "integer", Description: "Advisory signing position"},
				"status": {
					Type: "string",
					Enum: []string{"pending", "sent", "viewed", "signed", "declined"},
				},
				"signed_at":  {Type: "string", Format: "date-time"},
				"ip_address": {Type: "string", Description: "Client address captured at signature"},
				"user_agent": {Type: "string"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"AddSignerCommand": {
			Type:     "object",
			Required: []string{"name", "email"},
			Properties: map[string]*openapi.Schema{
				"name":  {Type: "string"},
				"email": {Type: "string"},
			},
		},
	}
}
