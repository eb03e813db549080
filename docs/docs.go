// Package docs provides the generated Swagger specification.
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
        "/parishes": {
            "get": {
                "tags": ["parishes"],
                "summary": "List parishes with optional filters",
                "parameters": [
                    {"name": "city", "in": "query", "type": "string"},
                    {"name": "state", "in": "query", "type": "string"},
                    {"name": "service", "in": "query", "type": "string"},
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/parishes/{id}": {
            "get": {
                "tags": ["parishes"],
                "summary": "Get a parish by ID",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/parishes/{id}/events": {
            "get": {
                "tags": ["parishes"],
                "summary": "List upcoming events at a parish",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/parishes/search/{name}": {
            "get": {
                "tags": ["parishes"],
                "summary": "Search parishes by name",
                "parameters": [
                    {"name": "name", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/parishes/by-state/{state}": {
            "get": {
                "tags": ["parishes"],
                "summary": "List parishes in a state",
                "parameters": [
                    {"name": "state", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/states": {
            "get": {
                "tags": ["parishes"],
                "summary": "List states with at least one active parish",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events": {
            "get": {
                "tags": ["events"],
                "summary": "List events with optional filters",
                "parameters": [
                    {"name": "parish_id", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "skill", "in": "query", "type": "string"},
                    {"name": "from_date", "in": "query", "type": "string"},
                    {"name": "to_date", "in": "query", "type": "string"},
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["events"],
                "summary": "Get an event by ID",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/events/search": {
            "get": {
                "tags": ["events"],
                "summary": "Search open volunteer opportunities",
                "parameters": [
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "skills", "in": "query", "type": "string"},
                    {"name": "start_date", "in": "query", "type": "string"},
                    {"name": "end_date", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/search/{title}": {
            "get": {
                "tags": ["events"],
                "summary": "Search events by title",
                "parameters": [
                    {"name": "title", "in": "path", "type": "string", "required": true},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/{id}/registrations": {
            "get": {
                "tags": ["registrations"],
                "summary": "List registrations for an event",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/skills": {
            "get": {
                "tags": ["events"],
                "summary": "List distinct skills across active events",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/registrations": {
            "post": {
                "tags": ["registrations"],
                "summary": "Register a volunteer for an event",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Event not found"},
                    "409": {"description": "Event full or already registered"}
                }
            }
        },
        "/registrations/{id}/checkin": {
            "post": {
                "tags": ["registrations"],
                "summary": "Check a volunteer in",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/registrations/{id}/checkout": {
            "post": {
                "tags": ["registrations"],
                "summary": "Check a volunteer out and record hours",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/registrations/{id}/feedback": {
            "post": {
                "tags": ["registrations"],
                "summary": "Submit a rating and feedback for a registration",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/volunteers/lookup": {
            "get": {
                "tags": ["volunteers"],
                "summary": "Look a volunteer up by email",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/volunteers/{id}": {
            "get": {
                "tags": ["volunteers"],
                "summary": "Get a volunteer by ID",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["volunteers"],
                "summary": "Update a volunteer profile",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/volunteers/{id}/registrations": {
            "get": {
                "tags": ["registrations"],
                "summary": "List registrations for a volunteer",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analytics/parishes/{name}": {
            "get": {
                "tags": ["analytics"],
                "summary": "Get impact analytics for a parish",
                "parameters": [
                    {"name": "name", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/analytics/parishes/export": {
            "get": {
                "tags": ["analytics"],
                "summary": "Export the parish impact report",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "excel", "pdf"]}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chat": {
            "post": {
                "tags": ["chat"],
                "summary": "Send a message to the CaritasAI agent",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Agent unavailable"}}
            }
        },
        "/chat/reset": {
            "post": {
                "tags": ["chat"],
                "summary": "Reset a chat session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chat/history": {
            "get": {
                "tags": ["chat"],
                "summary": "Get the transcript for a chat session",
                "parameters": [
                    {"name": "session_id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CaritasAI API",
	Description:      "Volunteer matching backend for Catholic parishes: events, registrations, analytics, and a conversational agent.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
