package documents

import "github.com/quillsign/quillsign/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Upload *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
	Send   *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List documents",
		Description: "List the acting owner's documents with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in title and filename", false),
			openapi.QueryParam("title", "string", "Filter by title (contains)", false),
			openapi.QueryParam("status", "string", "Filter by lifecycle status", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documents list", "DocumentPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find document",
		Description: "Find document by ID with its signers and fields",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document details", "DocumentDetail"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Upload: &openapi.Operation{
		Summary:     "Upload document",
		Description: "Upload a PDF with optional display title. Page count is extracted from the file.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file":  {Type: "string", Description: "PDF file to upload"},
							"title": {Type: "string", Description: "Optional display title (defaults to filename)"},
						},
						Required: []string{"file"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Document uploaded", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "File too large"},
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update document",
		Description: "Update the display title of a draft document",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateDocumentCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document updated", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete document",
		Description: "Delete a draft document, its stored file, and all dependent records",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Document deleted"},
			403: openapi.ResponseRef("Forbidden"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Send: &openapi.Operation{
		Summary:     "Send document for signing",
		Description: "Transition a draft document to sent, mint signer access tokens, and return per-signer signing links",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document sent", "SendResult"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			422: {Description: "Document has no signers or no placed fields"},
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"owner_id":     {Type: "string", Format: "uuid"},
				"title":        {Type: "string", Description: "Display title"},
				"filename":     {Type: "string", Description: "Original filename"},
				"content_type": {Type: "string", Description: "MIME type"},
				"size_bytes":   {Type: "integer", Format: "int64", Description: "File size in bytes"},
				"page_count":   {Type: "integer", Description: "PDF page count"},
				"storage_key":  {Type: "string", Description: "Storage location key"},
				"status": {
					Type: "string",
					Enum: []string{"draft", "sent", "completed", "declined", "expired"},
				},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"DocumentDetail": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"owner_id":     {Type: "string", Format: "uuid"},
				"title":        {Type: "string"},
				"filename":     {Type: "string"},
				"content_type": {Type: "string"},
				"size_bytes":   {Type: "integer", Format: "int64"},
				"page_count":   {Type: "integer"},
				"storage_key":  {Type: "string"},
				"status": {
					Type: "string",
					Enum: []string{"draft", "sent", "completed", "declined", "expired"},
				},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
				"signers":    {Type: "array", Items: openapi.SchemaRef("Signer")},
				"fields":     {Type: "array", Items: openapi.SchemaRef("Field")},
			},
		},
		"UpdateDocumentCommand": {
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]*openapi.Schema{
				"title": {Type: "string", Description: "New display title"},
			},
		},
		"SigningLink": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":  {Type: "string"},
				"email": {Type: "string"},
				"url":   {Type: "string", Description: "Signer-facing signing URL"},
			},
		},
		"SendResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"document":      openapi.SchemaRef("Document"),
				"signing_links": {Type: "array", Items: openapi.SchemaRef("SigningLink")},
			},
		},
		"DocumentPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Document")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
