// Package docs registers the pricetrack swagger document with swag.
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
        "/purchases": {
            "post": {
                "description": "Record a purchase, its line items and one price observation per item atomically",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "Record a purchase",
                "parameters": [
                    {
                        "description": "Purchase details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.RecordPurchaseRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Purchase recorded", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Purchase could not be recorded", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/purchases/user/{userId}": {
            "get": {
                "description": "List the purchases of a user, newest first, with branch, supermarket and item count",
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "List a user's purchases",
                "parameters": [{"type": "integer", "description": "User ID", "name": "userId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Purchases", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Invalid user ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/purchases/{purchaseId}/items": {
            "get": {
                "description": "List the line items of a purchase in insertion order with product details",
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "List purchase items",
                "parameters": [{"type": "integer", "description": "Purchase ID", "name": "purchaseId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Line items", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Invalid purchase ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Purchase not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List products",
                "responses": {
                    "200": {"description": "Products", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/code/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by barcode",
                "parameters": [{"type": "string", "description": "Barcode", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Product", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Invalid barcode", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{productId}/price-history": {
            "get": {
                "description": "Valid price observations of a product, newest first, each with its trend",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Product price history",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "productId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Price history", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Invalid product ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/prices": {
            "get": {
                "description": "Newest valid price observations, optionally filtered by product, barcode, user or supermarket",
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Price feed",
                "parameters": [
                    {"type": "number", "description": "Maximum records (clamped to 20..300, default 120)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Search text", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Feed", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/prices/summary": {
            "get": {
                "description": "Count, distinct users and products, and mean price of a feed window",
                "produces": ["application/json"],
                "tags": ["prices"],
                "summary": "Price feed summary",
                "parameters": [
                    {"type": "number", "description": "Maximum records (clamped to 20..300, default 120)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Search text", "name": "q", "in": "query"},
                    {"type": "string", "description": "Restrict figures to one supermarket", "name": "supermarket", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Summary", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/supermarkets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["supermarkets"],
                "summary": "List supermarkets",
                "responses": {
                    "200": {"description": "Supermarkets", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/supermarkets/{supermarketId}/branches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["supermarkets"],
                "summary": "List branches",
                "parameters": [{"type": "integer", "description": "Supermarket ID", "name": "supermarketId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Branches", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Invalid supermarket ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Supermarket not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/supermarkets/{supermarketId}/product-prices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["supermarkets"],
                "summary": "Latest prices of a supermarket",
                "parameters": [{"type": "integer", "description": "Supermarket ID", "name": "supermarketId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Latest prices", "schema": {"$ref": "#/definitions/handlers.Response"}},
                    "400": {"description": "Invalid supermarket ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Supermarket not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.LineItemRequest": {
            "type": "object",
            "required": ["productId", "quantity", "unitPrice"],
            "properties": {
                "productId": {"type": "integer"},
                "quantity": {"type": "integer"},
                "unitPrice": {"type": "number"}
            }
        },
        "handlers.RecordPurchaseRequest": {
            "type": "object",
            "required": ["branchId", "lineItems", "purchaseDate", "userId"],
            "properties": {
                "branchId": {"type": "integer"},
                "lineItems": {
                    "type": "array",
                    "minItems": 1,
                    "items": {"$ref": "#/definitions/handlers.LineItemRequest"}
                },
                "purchaseDate": {"type": "string", "example": "2024-01-01"},
                "totalOverride": {"type": "number"},
                "userId": {"type": "integer"}
            }
        },
        "handlers.Response": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "meta": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Pricetrack API",
	Description:      "Community grocery price tracking: purchases, price history, trends and the shared price feed.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
