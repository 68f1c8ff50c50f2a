// Package docs регистрирует OpenAPI-описание для /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@donor-matching.local"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/matches/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Matching"],
                "summary": "Поиск ближайших кандидатов",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.MatchSearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MatchSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/donors/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Matching"],
                "summary": "Поиск доноров и банков крови",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DonorSearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MatchSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/oxygen/search": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Matching"],
                "summary": "Поиск поставщиков кислорода",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.OxygenSearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MatchSearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/blood-banks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["BloodBanks"],
                "summary": "Список банков крови",
                "parameters": [
                    {"type": "string", "description": "Подстрока названия или района", "name": "location", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BloodBankListResponse"}}
                }
            }
        },
        "/api/v1/blood-banks/availability": {
            "get": {
                "produces": ["application/json"],
                "tags": ["BloodBanks"],
                "summary": "Наличие крови нужной группы",
                "parameters": [
                    {"type": "string", "name": "blood_group", "in": "query", "required": true},
                    {"type": "string", "name": "bank_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AvailabilityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/donors/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Matching"],
                "summary": "Донор по ID",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CandidateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/oxygen/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Matching"],
                "summary": "Поставщик кислорода по ID",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CandidateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/blood-banks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["BloodBanks"],
                "summary": "Банк крови по ID",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BloodBankResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.MatchSearchRequest": {
            "type": "object",
            "required": ["lat", "lon"],
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "blood_group": {"type": "string", "example": "O+"},
                "radius_km": {"type": "number", "example": 10},
                "location": {"type": "string"},
                "kinds": {"type": "array", "items": {"type": "string", "enum": ["donor", "blood_bank", "oxygen_supplier"]}},
                "limit": {"type": "integer", "maximum": 500, "minimum": 1}
            }
        },
        "dto.DonorSearchRequest": {
            "type": "object",
            "required": ["lat", "lon", "blood_group"],
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "blood_group": {"type": "string", "example": "O+"},
                "radius_km": {"type": "number"},
                "location": {"type": "string"},
                "include_blood_banks": {"type": "boolean"},
                "limit": {"type": "integer"}
            }
        },
        "dto.OxygenSearchRequest": {
            "type": "object",
            "required": ["lat", "lon"],
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "radius_km": {"type": "number"},
                "location": {"type": "string"},
                "limit": {"type": "integer"}
            }
        },
        "dto.CandidateResult": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "coordinate": {"type": "object", "properties": {"lat": {"type": "number"}, "lon": {"type": "number"}}},
                "distance_km": {"type": "number"},
                "donor": {"type": "object"},
                "blood_bank": {"type": "object"},
                "oxygen": {"type": "object"}
            }
        },
        "dto.CandidateResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "coordinate": {"type": "object", "properties": {"lat": {"type": "number"}, "lon": {"type": "number"}}},
                "donor": {"type": "object"},
                "oxygen": {"type": "object"}
            }
        },
        "dto.MatchSearchResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.CandidateResult"}},
                "total": {"type": "integer"},
                "radius_km": {"type": "number"}
            }
        },
        "dto.BloodBankResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "location": {"type": "string"},
                "inventory": {"type": "object", "additionalProperties": {"type": "integer"}},
                "operating_hours": {"type": "string"},
                "is_open": {"type": "boolean"},
                "contact": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "dto.BloodBankListResponse": {
            "type": "object",
            "properties": {
                "blood_banks": {"type": "array", "items": {"$ref": "#/definitions/dto.BloodBankResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.AvailabilityResponse": {
            "type": "object",
            "properties": {
                "blood_group": {"type": "string"},
                "available": {"type": "boolean"},
                "locations": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "bank_id": {"type": "string"},
                            "name": {"type": "string"},
                            "units": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Donor Matching Service API",
	Description:      "Подбор ближайших доноров крови, банков крови и поставщиков кислорода по координатам искателя.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
