// Package docs holds the OpenAPI description served under /swagger.
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
        "/health": {
            "get": {
                "description": "Report whether the weather upstream is configured and Redis is reachable",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/weather": {
            "post": {
                "description": "Resolve a place name or postal code (optionally \"code,CC\") and describe the present conditions",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get current weather",
                "parameters": [
                    {"description": "Location to look up", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.WeatherRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "Rendered weather", "schema": {"$ref": "#/definitions/model.WeatherResponseDTO"}},
                    "400": {"description": "Missing location or malformed postal code", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}},
                    "404": {"description": "Location not found or no weather data", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}},
                    "500": {"description": "Missing api key or upstream failure", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}}
                }
            }
        },
        "/weather/forecast": {
            "post": {
                "description": "Resolve a place name or postal code and describe the nearest upcoming 3-hour forecast",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get the next forecast slot",
                "parameters": [
                    {"description": "Location to look up", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.WeatherRequestDTO"}}
                ],
                "responses": {
                    "200": {"description": "Rendered forecast", "schema": {"$ref": "#/definitions/model.WeatherResponseDTO"}},
                    "400": {"description": "Missing location or malformed postal code", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}},
                    "404": {"description": "Location not found or no forecast data", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}},
                    "500": {"description": "Missing api key or upstream failure", "schema": {"$ref": "#/definitions/model.ErrorResponseDTO"}}
                }
            }
        }
    },
    "definitions": {
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]}
            }
        },
        "model.ErrorResponseDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Location not found"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "redis": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "status": {"type": "string", "enum": ["UP", "DOWN", "UNKNOWN"]},
                "upstream": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        },
        "model.WeatherRequestDTO": {
            "type": "object",
            "required": ["location"],
            "properties": {
                "location": {"type": "string", "example": "411001"}
            }
        },
        "model.WeatherResponseDTO": {
            "type": "object",
            "properties": {
                "forecast": {"type": "string", "example": "Current weather for Pune, IN at 2026-10-17 09:30:00:\n- clear sky\n- Temperature: 27.4°C\n- Humidity: 48%\n- Wind speed: 3.1 m/s"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Weather Agent API",
	Description:      "Resolves a place name or postal code and reports its current weather or next forecast slot.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
