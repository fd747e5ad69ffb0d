package fields

import "github.com/quillsign/quillsign/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Place  *openapi.Operation
	Remove *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List fields",
		Description: "List all fields placed on a document, ordered by page",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Fields list", "FieldList"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Place: &openapi.Operation{
		Summary:     "Place field",
		Description: "Place a field on a page of a draft document. Width, height, and required fall back to type defaults.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("PlaceFieldCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Field placed", "Field"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Remove: &openapi.Operation{
		Summary:     "Remove field",
		Description: "Remove a field from a draft document",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.PathParam("fieldId", "Field ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Field removed"},
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Field": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"document_id": {Type: "string", Format: "uuid"},
				"signer_id":   {Type: "string", Format: "uuid"},
				"field_type": {
					Type: "string",
					Enum: []string{"signature", "initials", "date", "text", "checkbox"},
				},
				"page_number": {Type: "integer"},
				"x_position":  {Type: "number", Description: "Horizontal position in page percent"},
				"y_position":  {Type: "number", Description: "Vertical position in page percent"},
				"width":       {Type: "number"},
				"height":      {Type: "number"},
				"value":       {Type: "string", Description: "Value captured at signing"},
				"required":    {Type: "boolean"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"PlaceFieldCommand": {
			Type:     "object",
			Required: []string{"field_type", "page_number", "x_position", "y_position"},
			Properties: map[string]*openapi.Schema{
				"signer_id": {Type: "string", Format: "uuid", Description: "Signer the field is assigned to"},
				"field_type": {
					Type: "string",
					Enum: []string{"signature", "initials", "date", "text", "checkbox"},
				},
				"page_number": {Type: "integer"},
				"x_position":  {Type: "number"},
				"y_position":  {Type: "number"},
				"width":       {Type: "number"},
				"height":      {Type: "number"},
				"required":    {Type: "boolean"},
			},
		},
		"FieldList": {
			Type:  "array",
			Items: openapi.SchemaRef("Field"),
		},
	}
}
