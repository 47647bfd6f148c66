// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/estimates": {
            "post": {
                "description": "Parse a Xactimate PDF estimate into line items and summary totals",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["estimates"],
                "summary": "Upload an estimate",
                "parameters": [
                    {"type": "file", "description": "Xactimate estimate (PDF)", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Estimate parsed", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Missing file or not a PDF", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Unreadable PDF or no line items", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/estimates/debug": {
            "post": {
                "description": "Return the raw extracted text of a PDF without parsing it",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["estimates"],
                "summary": "Dump extracted PDF text",
                "parameters": [
                    {"type": "file", "description": "PDF file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Extraction diagnostics", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Missing file or not a PDF", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Unreadable PDF", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/estimates/{id}": {
            "get": {
                "description": "Get a previously uploaded estimate by ID",
                "produces": ["application/json"],
                "tags": ["estimates"],
                "summary": "Get an estimate",
                "parameters": [
                    {"type": "string", "description": "Estimate ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Estimate", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Estimate not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/comparisons": {
            "post": {
                "description": "Reconcile two previously uploaded estimates by line-item description",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comparisons"],
                "summary": "Compare two uploaded estimates",
                "parameters": [
                    {"description": "Estimate IDs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CompareRequest"}}
                ],
                "responses": {
                    "201": {"description": "Comparison report", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Estimate not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "409": {"description": "Summary strategy mismatch", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/comparisons/files": {
            "post": {
                "description": "Parse two Xactimate PDFs in parallel and reconcile them",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["comparisons"],
                "summary": "Upload and compare two estimates",
                "parameters": [
                    {"type": "file", "description": "First estimate (PDF)", "name": "first", "in": "formData", "required": true},
                    {"type": "file", "description": "Second estimate (PDF)", "name": "second", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Comparison report", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Missing file or not a PDF", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Unreadable PDF or no line items", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/comparisons/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comparisons"],
                "summary": "Get a comparison report",
                "parameters": [
                    {"type": "string", "description": "Report ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Comparison report", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Report not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/comparisons/{id}/export": {
            "get": {
                "description": "Download the report as tab-separated text or an XLSX workbook",
                "produces": ["text/tab-separated-values", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["comparisons"],
                "summary": "Download a comparison report",
                "parameters": [
                    {"type": "string", "description": "Report ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"enum": ["tsv", "xlsx"], "type": "string", "default": "tsv", "description": "Export format", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Report file", "schema": {"type": "file"}},
                    "400": {"description": "Invalid ID or format", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Report not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.CompareRequest": {
            "type": "object",
            "required": ["first_id", "second_id"],
            "properties": {
                "first_id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "second_id": {"type": "string", "example": "660e8400-e29b-41d4-a716-446655440001"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.APIError"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "xactdiff API",
	Description:      "Upload two Xactimate estimates and compare their line items.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
