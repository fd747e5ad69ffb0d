package signing

import "github.com/quillsign/quillsign/pkg/openapi"

type spec struct {
	Resolve *openapi.Operation
	Submit  *openapi.Operation
	Decline *openapi.Operation
}

var Spec = spec{
	Resolve: &openapi.Operation{
		Summary:     "Resolve signing session",
		Description: "Resolve a signing token into the signer, document, and fields. The first resolution marks the signer as having viewed the document.",
		Parameters: []*openapi.Parameter{
			openapi.TokenParam("Signer access token"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Signing session", "SigningView"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Submit: &openapi.Operation{
		Summary:     "Submit signature",
		Description: "Apply field values and mark the signer as signed. The response reports whether this signature completed the document.",
		Parameters: []*openapi.Parameter{
			openapi.TokenParam("Signer access token"),
		},
		RequestBody: openapi.RequestBodyJSON("SubmitCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Signature recorded", "SubmitResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			422: {Description: "Required fields are missing values"},
		},
	},
	Decline: &openapi.Operation{
		Summary:     "Decline to sign",
		Description: "Mark the signer as declined with an optional reason. A document still out for signing is declined with them.",
		Parameters: []*openapi.Parameter{
			openapi.TokenParam("Signer access token"),
		},
		RequestBody: openapi.RequestBodyJSON("DeclineCommand", false),
		Responses: map[int]*openapi.Response{
			204: {Description: "Declined"},
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"SigningView": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"signer": openapi.SchemaRef("Signer"),
				"document": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"id":           {Type: "string", Format: "uuid"},
						"title":        {Type: "string"},
						"filename":     {Type: "string"},
						"content_type": {Type: "string"},
						"page_count":   {Type: "integer"},
						"status": {
							Type: "string",
							Enum: []string{"draft", "sent", "completed", "declined", "expired"},
						},
						"created_at": {Type: "string", Format: "date-time"},
					},
				},
				"fields": {Type: "array", Items: openapi.SchemaRef("Field")},
			},
		},
		"SubmitCommand": {
			Type:     "object",
			Required: []string{"fields"},
			Properties: map[string]*openapi.Schema{
				"fields": {
					Type: "array",
					Items: &openapi.Schema{
						Type:     "object",
						Required: []string{"id"},
						Properties: map[string]*openapi.Schema{
							"id":    {Type: "string", Format: "uuid"},
							"value": {Type: "string"},
						},
					},
				},
			},
		},
		"SubmitResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"completed": {Type: "boolean", Description: "Whether this signature completed the document"},
			},
		},
		"DeclineCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"reason": {Type: "string"},
			},
		},
	}
}
