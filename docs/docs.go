// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cpf/validate": {
            "post": {
                "description": "Valida vários CPFs de uma vez. Entradas textuais vão em \"cpfs\" e numéricas em \"numbers\"; os resultados seguem a ordem do pedido, textuais primeiro.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cpf"],
                "summary": "Validar lote de CPFs",
                "parameters": [
                    {
                        "description": "CPFs a validar",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.BatchValidationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resultado por CPF",
                        "schema": {
                            "$ref": "#/definitions/models.BatchValidationResponse"
                        }
                    },
                    "400": {
                        "description": "Corpo inválido, lote vazio ou acima do limite",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/cpf/{cpf}": {
            "get": {
                "description": "Valida um CPF informado como 11 dígitos ou no formato XXX.XXX.XXX-XX. Com numeric=true o parâmetro é interpretado como número inteiro, com zeros à esquerda opcionais.",
                "produces": ["application/json"],
                "tags": ["cpf"],
                "summary": "Validar CPF",
                "parameters": [
                    {
                        "type": "string",
                        "description": "CPF a validar",
                        "name": "cpf",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Interpretar o CPF como número inteiro",
                        "name": "numeric",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "CPF válido",
                        "schema": {
                            "$ref": "#/definitions/models.CPFValidationResult"
                        }
                    },
                    "400": {
                        "description": "CPF inválido",
                        "schema": {
                            "$ref": "#/definitions/models.CPFValidationResult"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Verifica a saúde da API executando uma validação de CPF conhecida.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Verificação de saúde",
                "responses": {
                    "200": {
                        "description": "Serviço saudável",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Validador indisponível",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "services": {
                    "type": "object",
                    "additionalProperties": {"type": "string"}
                },
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.BatchSummary": {
            "type": "object",
            "properties": {
                "invalid": {"type": "integer"},
                "total": {"type": "integer"},
                "valid": {"type": "integer"}
            }
        },
        "models.BatchValidationRequest": {
            "type": "object",
            "properties": {
                "cpfs": {
                    "type": "array",
                    "items": {"type": "string"},
                    "example": ["016.783.460-63"]
                },
                "numbers": {
                    "type": "array",
                    "items": {"type": "integer"},
                    "example": [1678346063]
                }
            }
        },
        "models.BatchValidationResponse": {
            "type": "object",
            "properties": {
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CPFValidationResult"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/models.BatchSummary"
                }
            }
        },
        "models.CPFValidationResult": {
            "type": "object",
            "properties": {
                "cpf": {"type": "string"},
                "input": {"type": "string"},
                "message": {"type": "string"},
                "reason": {"type": "string"},
                "valid": {"type": "boolean"},
                "value": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "CPF API",
	Description:      "API para validação de CPF (Cadastro de Pessoas Físicas). Aceita CPFs como 11 dígitos, no formato XXX.XXX.XXX-XX ou como número inteiro, e informa o motivo de cada rejeição.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
