// Package docs registers the OpenAPI description served under /swagger.
// It mirrors the handler annotations; `swag init -g cmd/api/main.go` rebuilds it.
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
        "/conversation/{sessionId}": {
            "get": {
                "description": "Returns the turns kept as context for a session.",
                "produces": ["application/json"],
                "tags": ["Relay"],
                "summary": "Cached conversation",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.conversationResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Service status plus the wake phrases, help keywords and enabled features",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/httpserver.healthResp"}}
                }
            }
        },
        "/help": {
            "get": {
                "description": "Static guide on how to talk to the assistant.",
                "produces": ["application/json"],
                "tags": ["Relay"],
                "summary": "Usage guide",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.helpResp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"$ref": "#/definitions/httpserver.healthResp"}}
                }
            }
        },
        "/memories": {
            "post": {
                "description": "Embeds the content and stores it in the vector index for the user.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Memory"],
                "summary": "Save a memory",
                "parameters": [
                    {"description": "Memory to save", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.saveReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.saveResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Downstream or configuration error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/memories/search": {
            "get": {
                "description": "Returns the user's memories most similar to the query.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Memory"],
                "summary": "Search memories",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "query", "required": true},
                    {"type": "string", "description": "Search query", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "Max results (default: memory.top_k)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.searchResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Downstream or configuration error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/omi-webhook": {
            "post": {
                "description": "Detects the wake phrase, asks the model and sends the answer as an Omi notification.\nTranscripts without a wake phrase or help request are ignored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Relay"],
                "summary": "Receive an Omi transcript",
                "parameters": [
                    {"type": "string", "description": "Notification target (default: session_id)", "name": "uid", "in": "query"},
                    {"description": "Transcript event", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.webhookReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.outcomeResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Invalid webhook secret", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Downstream or configuration error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/rate-limit/{userId}": {
            "get": {
                "description": "Returns the token bucket state and counters of a user.",
                "produces": ["application/json"],
                "tags": ["Relay"],
                "summary": "Rate limit counters",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.rateLimitResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/httpserver.healthResp"}}
                }
            }
        }
    },
    "definitions": {
        "http.commandResp": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "phrase": {"type": "string"}
            }
        },
        "http.conversationResp": {
            "type": "object",
            "properties": {
                "context": {"type": "array", "items": {"$ref": "#/definitions/http.turnResp"}},
                "has_context": {"type": "boolean"},
                "message_count": {"type": "integer"},
                "session_id": {"type": "string"}
            }
        },
        "http.helpResp": {
            "type": "object",
            "properties": {
                "commands": {"type": "array", "items": {"$ref": "#/definitions/http.commandResp"}},
                "description": {"type": "string"},
                "examples": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "usage": {"type": "array", "items": {"type": "string"}},
                "wake_phrases": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.memoryResp": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "score": {"type": "number"},
                "user_id": {"type": "string"}
            }
        },
        "http.outcomeResp": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "message": {"type": "string"},
                "mode": {"type": "string"},
                "question": {"type": "string"},
                "reason": {"type": "string"},
                "session_id": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "http.rateLimitResp": {
            "type": "object",
            "properties": {
                "allowed_total": {"type": "integer"},
                "burst": {"type": "integer"},
                "last_seen": {"type": "string"},
                "limit_per_minute": {"type": "integer"},
                "rejected_total": {"type": "integer"},
                "tokens_remaining": {"type": "number"},
                "user_id": {"type": "string"}
            }
        },
        "http.saveReq": {
            "type": "object",
            "required": ["content", "user_id"],
            "properties": {
                "category": {"type": "string", "maxLength": 64},
                "content": {"type": "string", "maxLength": 4000},
                "user_id": {"type": "string"}
            }
        },
        "http.saveResp": {
            "type": "object",
            "properties": {
                "memory": {"$ref": "#/definitions/http.memoryResp"}
            }
        },
        "http.searchResp": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "memories": {"type": "array", "items": {"$ref": "#/definitions/http.memoryResp"}}
            }
        },
        "http.turnResp": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "question": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "http.webhookReq": {
            "type": "object",
            "properties": {
                "segments": {"type": "array", "items": {"$ref": "#/definitions/model.Segment"}},
                "session_id": {"type": "string"}
            }
        },
        "httpserver.capabilitiesResp": {
            "type": "object",
            "properties": {
                "extraction": {"type": "string"},
                "features": {"$ref": "#/definitions/httpserver.featuresResp"},
                "help_keywords": {"type": "array", "items": {"type": "string"}},
                "match_policy": {"type": "string"},
                "max_context_turns": {"type": "integer"},
                "wake_phrases": {"type": "array", "items": {"type": "string"}}
            }
        },
        "httpserver.featuresResp": {
            "type": "object",
            "properties": {
                "assistant": {"type": "boolean"},
                "llm_providers": {"type": "array", "items": {"type": "string"}},
                "memory": {"type": "boolean"},
                "web_search": {"type": "boolean"}
            }
        },
        "httpserver.healthResp": {
            "type": "object",
            "properties": {
                "capabilities": {"$ref": "#/definitions/httpserver.capabilitiesResp"},
                "environment": {"type": "string"},
                "message": {"type": "string"},
                "service": {"type": "string"},
                "status": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "model.Segment": {
            "type": "object",
            "properties": {
                "end": {"type": "number"},
                "is_user": {"type": "boolean"},
                "speaker": {"type": "string"},
                "speaker_id": {"type": "integer"},
                "start": {"type": "number"},
                "text": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Omi Relay API",
	Description:      "Relays Omi wake-phrase questions to an LLM and sends the answers back as Omi notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
