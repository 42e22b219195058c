// Package docs holds the Swagger description of the chatbot API served at
// /swagger. It follows the layout swag init produces.
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
        "/chatbot/chat": {
            "post": {
                "description": "Classifies the message and answers from the pharmacy records, the knowledge base or external references.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chatbot"],
                "summary": "Answer a chat message",
                "parameters": [
                    {
                        "description": "Chat message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ChatRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "429": {"description": "Too Many Requests", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/chatbot/drug-interactions": {
            "post": {
                "description": "Checks every unordered pair of medications against the interaction table.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chatbot"],
                "summary": "Check drug interactions",
                "parameters": [
                    {
                        "description": "Medications",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.DrugInteractionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/chatbot/insights": {
            "get": {
                "description": "Stock, expiry, customer and sales totals for the dashboard.",
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Dashboard insights",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/chatbot/reports": {
            "post": {
                "description": "Generates a sales_summary, stock_alerts or customer_loyalty report.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Generate a report",
                "parameters": [
                    {
                        "description": "Report type and optional date range",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ReportRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/chatbot/intents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chatbot"],
                "summary": "List supported intents",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "models.Action": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "label": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "context": {"type": "string"}
            }
        },
        "models.ChatResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "response": {"type": "string"},
                "context": {"type": "string"},
                "analysis": {"type": "object", "additionalProperties": true},
                "actions": {"type": "array", "items": {"$ref": "#/definitions/models.Action"}}
            }
        },
        "models.DrugInteractionRequest": {
            "type": "object",
            "required": ["medications"],
            "properties": {
                "medications": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.DateRange": {
            "type": "object",
            "properties": {
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"}
            }
        },
        "models.ReportRequest": {
            "type": "object",
            "required": ["reportType"],
            "properties": {
                "reportType": {"type": "string", "enum": ["sales_summary", "stock_alerts", "customer_loyalty"]},
                "dateRange": {"$ref": "#/definitions/models.DateRange"}
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
	Title:            "Pharmacy Chatbot API",
	Description:      "Rule-based assistant over pharmacy stock, sales and customer records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
