// Package swagger registers the OpenAPI document served at /swagger.
package swagger

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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/report": {
            "get": {
                "description": "Lists the load balancers known to the inventory.",
                "produces": ["application/json"],
                "tags": ["report"],
                "summary": "List Devices",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/inventory.Device"}}}
                }
            }
        },
        "/report/{device}": {
            "get": {
                "description": "Fetches virtual servers, pools and nodes of a device, joins them with their statistics and returns the report rows with per-class counters.",
                "produces": ["application/json"],
                "tags": ["report"],
                "summary": "Device Report",
                "parameters": [
                    {"type": "string", "description": "Device name or management address", "name": "device", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Unknown device", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Collection could not be fetched", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/report/{device}/summary": {
            "get": {
                "description": "Counts statistics entries per availability state, with the number of disabled entries, for each class.",
                "produces": ["application/json"],
                "tags": ["report"],
                "summary": "Device Statistics Summary",
                "parameters": [
                    {"type": "string", "description": "Device name or management address", "name": "device", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Unknown device", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Statistics could not be fetched", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/archive": {
            "get": {
                "description": "Lists report files uploaded to the archive bucket, optionally for one day.",
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "List Archived Reports",
                "parameters": [
                    {"type": "string", "description": "Day (YYYY-MM-DD)", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "400": {"description": "Invalid date", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/archive/bucket": {
            "get": {
                "description": "Checks that the archive bucket exists. Optionally creates it.",
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "Check Archive Bucket",
                "parameters": [
                    {"type": "boolean", "description": "Create the bucket when missing", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Bucket Report", "schema": {"type": "object"}}
                }
            }
        },
        "/history": {
            "get": {
                "description": "Lists the latest reconciliation runs with their per-class status counts.",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Run History",
                "parameters": [
                    {"type": "integer", "description": "Number of runs (default 20)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Device filter", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "400": {"description": "Invalid limit", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "inventory.Device": {
            "type": "object",
            "properties": {
                "device": {"type": "string"},
                "mgmt_ip": {"type": "string"},
                "dc": {"type": "string"},
                "tier": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LB Status API",
	Description:      "Load balancer status reconciliation reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
