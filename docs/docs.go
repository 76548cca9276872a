// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/homes": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Create a home with the caller as first member",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createHomeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Home"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/homes/join": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Join a home by invite code",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.joinHomeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Home"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/homes/leave": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Leave the current home",
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/homes/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["homes"],
                "summary": "Current home and its members in join order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.HomeView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Tasks of the caller's home, both bounds inclusive",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD, default today", "name": "from", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, default from + 6 days", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Task"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Create a task in the caller's home",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Task"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/tasks/{id}/complete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Complete a task and issue its receipt",
                "parameters": [
                    {"type": "string", "description": "task id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Receipt"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/stats/home": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Daily and rolling weekly points of the whole home",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD, default end_date - 13 days", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, default today", "name": "end_date", "in": "query"},
                    {"type": "string", "description": "IANA time zone, default UTC", "name": "tz", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.HomeStatistic"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/stats/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Per-member points; a null user collects former members",
                "parameters": [
                    {"type": "string", "description": "YYYY-MM-DD, default end_date - 13 days", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, default today", "name": "end_date", "in": "query"},
                    {"type": "string", "description": "IANA time zone, default UTC", "name": "tz", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.UserStatistic"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/stats/progress": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Completed share of the tasks due from today over the next days",
                "parameters": [
                    {"type": "integer", "description": "window length, default 7", "name": "days", "in": "query"},
                    {"type": "string", "description": "IANA time zone, default UTC", "name": "tz", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ProgressMetric"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.DataPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "pointsDay": {"type": "integer"},
                "pointsWeek": {"type": "integer"}
            }
        },
        "domain.HomeStatistic": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.DataPoint"}}
            }
        },
        "domain.UserRef": {
            "type": "object",
            "properties": {"id": {"type": "string"}}
        },
        "domain.UserStatistic": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/domain.UserRef"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.DataPoint"}}
            }
        },
        "domain.ProgressMetric": {
            "type": "object",
            "properties": {
                "window_days": {"type": "integer"},
                "completed": {"type": "integer"},
                "total": {"type": "integer"},
                "percentage": {"type": "number"}
            }
        },
        "domain.Home": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "invite_code": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.Member": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "joined_at": {"type": "string"}
            }
        },
        "domain.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "home_id": {"type": "string"},
                "title": {"type": "string"},
                "points": {"type": "integer"},
                "date": {"type": "string"},
                "assignee_id": {"type": "string"},
                "completed": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "domain.Receipt": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "task_id": {"type": "string"},
                "home_id": {"type": "string"},
                "completer_id": {"type": "string"},
                "points": {"type": "integer"},
                "completion_date": {"type": "string"}
            }
        },
        "services.HomeView": {
            "type": "object",
            "properties": {
                "home": {"$ref": "#/definitions/domain.Home"},
                "members": {"type": "array", "items": {"$ref": "#/definitions/domain.Member"}}
            }
        },
        "http.registerRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8},
                "name": {"type": "string", "maxLength": 50}
            }
        },
        "http.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/http.userResponse"}
            }
        },
        "http.createHomeRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "http.joinHomeRequest": {
            "type": "object",
            "required": ["invite_code"],
            "properties": {"invite_code": {"type": "string"}}
        },
        "http.createTaskRequest": {
            "type": "object",
            "required": ["title", "points", "date"],
            "properties": {
                "title": {"type": "string"},
                "points": {"type": "integer", "minimum": 1},
                "date": {"type": "string"},
                "assignee_id": {"type": "string"}
            }
        },
        "http.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Kanso Home API",
	Description:      "Household chores, completion receipts and points statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
