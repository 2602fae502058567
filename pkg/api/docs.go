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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/encode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["codec"],
                "summary": "Encode a payload",
                "parameters": [
                    {"description": "Payload to encode", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.EncodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.EncodeResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/decode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["codec"],
                "summary": "Decode bytewords",
                "parameters": [
                    {"description": "Text to decode", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.DecodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DecodeResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/words": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["words"],
                "summary": "List the word table",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/api.WordEntry"}}}
                }
            }
        },
        "/words/{value}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["words"],
                "summary": "Look up one byte value",
                "parameters": [
                    {"type": "string", "description": "Byte value", "name": "value", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.WordEntry"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/payloads": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["vault"],
                "summary": "List stored payload ids",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vault"],
                "summary": "Store a payload",
                "parameters": [
                    {"description": "Payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.PayloadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.PayloadResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/payloads/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["vault"],
                "summary": "Fetch a stored payload as bytewords",
                "parameters": [
                    {"type": "string", "description": "Payload id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "standard, uri or minimal", "name": "style", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.PayloadResponse"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["vault"],
                "summary": "Delete a stored payload",
                "parameters": [
                    {"type": "string", "description": "Payload id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "api.EncodeRequest": {
            "type": "object",
            "properties": {
                "style": {"type": "string"},
                "data": {"type": "string"},
                "encoding": {"type": "string"}
            }
        },
        "api.EncodeResponse": {
            "type": "object",
            "properties": {
                "style": {"type": "string"},
                "text": {"type": "string"},
                "words": {"type": "integer"}
            }
        },
        "api.DecodeRequest": {
            "type": "object",
            "properties": {
                "style": {"type": "string"},
                "text": {"type": "string"},
                "encoding": {"type": "string"}
            }
        },
        "api.DecodeResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "string"},
                "encoding": {"type": "string"},
                "length": {"type": "integer"}
            }
        },
        "api.WordEntry": {
            "type": "object",
            "properties": {
                "value": {"type": "integer"},
                "hex": {"type": "string"},
                "word": {"type": "string"},
                "minimal": {"type": "string"}
            }
        },
        "api.PayloadRequest": {
            "type": "object",
            "properties": {
                "style": {"type": "string"},
                "data": {"type": "string"},
                "encoding": {"type": "string"}
            }
        },
        "api.PayloadResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "style": {"type": "string"},
                "text": {"type": "string"},
                "length": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bytewords REST API",
	Description:      "Encode binary payloads as bytewords and decode them back.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
