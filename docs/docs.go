// Package docs Horus Listing API.
//
// Каталог объявлений недвижимости: публичный поиск по коду, фильтры
// каталога, справочник городов и районов, админка объявлений.
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
        "/api/property": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Поиск объявления по коду",
                "parameters": [
                    {"type": "string", "description": "Код объявления", "name": "code", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PropertyLookup"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.PlainErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.PlainErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/utils.PlainErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.PlainErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Состояние сервиса",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/api/v1/properties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Каталог объявлений с фильтрами",
                "parameters": [
                    {"type": "string", "name": "property_code", "in": "query"},
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "area", "in": "query"},
                    {"type": "string", "name": "property_type", "in": "query"},
                    {"type": "string", "name": "listing_type", "in": "query"},
                    {"type": "number", "name": "min_price", "in": "query"},
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"type": "number", "name": "min_area", "in": "query"},
                    {"type": "integer", "name": "bedrooms", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/properties/sections": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Блоки главной страницы",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/properties/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Значения для формы поиска",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/properties/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Property"],
                "summary": "Карточка объявления",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Список городов",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/cities/{id}/areas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Районы города",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/areas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reference"],
                "summary": "Районы по названию города",
                "parameters": [{"type": "string", "name": "city", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/admin/properties": {
            "get": {
                "security": [{"AdminKey": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Объявления с приватными полями",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"AdminKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Добавить объявление",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PropertyRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/properties/next-code": {
            "get": {
                "security": [{"AdminKey": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Следующий свободный код",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/admin/properties/{id}": {
            "get": {
                "security": [{"AdminKey": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Полная запись объявления",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            },
            "put": {
                "security": [{"AdminKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Изменить объявление",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PropertyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin"],
                "summary": "Удалить объявление",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/admin/stats": {
            "get": {
                "security": [{"AdminKey": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Сводка по объявлениям",
                "parameters": [{"type": "boolean", "name": "refresh", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/admin/cities": {
            "post": {
                "security": [{"AdminKey": []}],
                "consumes": ["application/json"],
                "tags": ["Admin"],
                "summary": "Добавить город",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CityRequest"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/admin/cities/{id}": {
            "put": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin"],
                "summary": "Переименовать город",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CityRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin"],
                "summary": "Удалить город вместе с районами",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/admin/cities/{id}/areas": {
            "post": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin"],
                "summary": "Добавить район",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AreaRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/admin/areas/{id}": {
            "put": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin"],
                "summary": "Переименовать район",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AreaRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin"],
                "summary": "Удалить район",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/admin/cache/clear": {
            "post": {
                "security": [{"AdminKey": []}],
                "tags": ["Admin"],
                "summary": "Сбросить кеш справочника",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "domain.PropertyLookup": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "location": {"type": "string"},
                "project": {"type": "string"},
                "area": {"type": "number"},
                "rooms": {"type": "integer"},
                "price": {"type": "number"},
                "feature": {"type": "boolean"}
            }
        },
        "dto.PropertyRequest": {
            "type": "object",
            "required": ["name", "property_type", "listing_type", "price", "area", "city"],
            "properties": {
                "property_code": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "property_type": {"type": "string", "enum": ["شقة", "فيلا", "مكتب", "أرض", "محل تجاري", "شاليه"]},
                "listing_type": {"type": "string", "enum": ["للبيع", "للإيجار"]},
                "price": {"type": "number"},
                "area": {"type": "number"},
                "bedrooms": {"type": "integer"},
                "bathrooms": {"type": "integer"},
                "floor": {"type": "integer"},
                "city": {"type": "string"},
                "area_name": {"type": "string"},
                "address": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "images": {"type": "array", "items": {"type": "string"}},
                "featured": {"type": "boolean"},
                "owner_name": {"type": "string"},
                "owner_phone": {"type": "string"},
                "original_price": {"type": "number"},
                "admin_notes": {"type": "string"}
            }
        },
        "dto.CityRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "name_en": {"type": "string"}}
        },
        "dto.AreaRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "name_en": {"type": "string"}}
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errors.AppError"}}
        },
        "utils.PlainErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "matched": {"type": "integer"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {"data": {}, "meta": {"$ref": "#/definitions/utils.Meta"}}
        }
    },
    "securityDefinitions": {
        "AdminKey": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Horus Listing API",
	Description:      "Каталог объявлений недвижимости Horus",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
