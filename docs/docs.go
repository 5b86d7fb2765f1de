// Package docs registers the Swagger document served at /swagger/*any.
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
        "/api/v1/assistant/sessions": {
            "post": {
                "tags": ["Assistant"],
                "summary": "Start an assistant session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/assistant/sessions/{id}": {
            "delete": {
                "tags": ["Assistant"],
                "summary": "End a session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Session Not Found"}}
            }
        },
        "/api/v1/assistant/sessions/{id}/messages": {
            "get": {
                "tags": ["Assistant"],
                "summary": "List session messages",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Session Not Found"}}
            }
        },
        "/api/v1/assistant/chat": {
            "post": {
                "tags": ["Assistant"],
                "summary": "Send a chat message",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Session Not Found"}, "409": {"description": "Session Mode Mismatch"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/api/v1/assistant/voice": {
            "post": {
                "tags": ["Assistant"],
                "summary": "Submit a speech recognition event",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Session Not Found"}, "409": {"description": "Session Mode Mismatch"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/api/v1/assistant/charts/{kind}": {
            "get": {
                "tags": ["Assistant"],
                "summary": "Get chart dataset",
                "parameters": [{"type": "string", "name": "kind", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown Chart"}}
            }
        },
        "/test/classify": {
            "post": {
                "tags": ["test"],
                "summary": "Test intent classification",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/test/reset": {
            "post": {
                "tags": ["test"],
                "summary": "Reset test session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/test/health": {
            "get": {"tags": ["test"], "summary": "Test health check", "responses": {"200": {"description": "OK"}}}
        },
        "/health": {
            "get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}
        },
        "/ready": {
            "get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Transcript store unavailable"}}}
        },
        "/live": {
            "get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Banking Assistant API",
	Description:      "Keyword-routed financial chat assistant and voice banking commands.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
