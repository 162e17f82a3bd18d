// Package api holds the generated swagger specification.
package api

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
        "/": {
            "get": {
                "tags": ["General"],
                "summary": "API root",
                "description": "Entrypoint for the API, listing all endpoints",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/version": {
            "get": {
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/expenses": {
            "get": {
                "tags": ["Expenses"],
                "summary": "List expenses",
                "description": "Returns the expenses of the requesting user, ordered by date descending",
                "parameters": [{"type": "string", "name": "X-Owner-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "tags": ["Expenses"],
                "summary": "Create expense",
                "description": "Records a new expense and updates the matching budget's spent total",
                "parameters": [{"type": "string", "name": "X-Owner-ID", "in": "header", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/expenses/{id}": {
            "delete": {
                "tags": ["Expenses"],
                "summary": "Delete expense",
                "description": "Deletes an expense and updates the matching budget's spent total. Unknown ids are a no-op.",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "204": {"description": "No Content"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/budgets": {
            "get": {
                "tags": ["Budgets"],
                "summary": "List budgets",
                "parameters": [{"type": "string", "name": "X-Owner-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "tags": ["Budgets"],
                "summary": "Create budget",
                "description": "Creates a new budget with a spent total of zero. At most one budget per category.",
                "parameters": [{"type": "string", "name": "X-Owner-ID", "in": "header", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/budgets/{id}": {
            "get": {
                "tags": ["Budgets"],
                "summary": "Get budget",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Get profile",
                "parameters": [{"type": "string", "name": "X-Owner-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "put": {
                "tags": ["Profile"],
                "summary": "Set monthly income",
                "parameters": [{"type": "string", "name": "X-Owner-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Get dashboard",
                "description": "Returns the derived dashboard values: income, totals, remaining budget, per-budget status and per-category spending",
                "parameters": [{"type": "string", "name": "X-Owner-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
