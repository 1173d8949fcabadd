// Package docs holds the OpenAPI description served under /swagger/.
// Regenerate with: swag init -g api/main.go
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
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Filter and paginate products",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on name or id", "name": "q", "in": "query"},
                    {"type": "number", "description": "Minimum price", "name": "minPrice", "in": "query"},
                    {"type": "number", "description": "Maximum price", "name": "maxPrice", "in": "query"},
                    {"type": "integer", "description": "Minimum stock", "name": "minStock", "in": "query"},
                    {"type": "integer", "description": "Maximum stock", "name": "maxStock", "in": "query"},
                    {"type": "integer", "description": "Offset for pagination", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Limit for pagination", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductsSearchResult"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Adds a product to the catalogue",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a new product",
                "parameters": [
                    {"description": "Product to add", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductValidationError"}}},
                    "409": {"description": "Duplicate id", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/import": {
            "post": {
                "description": "Header must name id, name, price and stock columns; rows failing validation are reported and skipped",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["import"],
                "summary": "Import products via CSV",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory.ImportResult"}},
                    "400": {"description": "Invalid file", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/adjust": {
            "post": {
                "description": "Adds a signed delta to the stock; the result may not go below zero",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stock"],
                "summary": "Adjust product stock",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Stock delta", "name": "adjustment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StockAdjustmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Stock would become negative", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/stock": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stock"],
                "summary": "Set product stock",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "New stock level", "name": "stock", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StockSetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/sales": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "List recorded sales",
                "parameters": [
                    {"type": "string", "description": "Only sales of this product", "name": "product_id", "in": "query"},
                    {"type": "string", "description": "Start date (RFC 3339)", "name": "since", "in": "query"},
                    {"type": "string", "description": "End date (RFC 3339)", "name": "until", "in": "query"},
                    {"type": "integer", "description": "Offset for pagination", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Limit for pagination", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SalesSearchResult"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Decrements stock and appends the sale to the ledger",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales"],
                "summary": "Record a sale",
                "parameters": [
                    {"description": "Sale to record", "name": "sale", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SaleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Sale"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Insufficient stock", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/sales/export": {
            "get": {
                "produces": ["text/csv", "application/json"],
                "tags": ["sales"],
                "summary": "Export the sales ledger",
                "parameters": [
                    {"type": "string", "description": "Export format (csv or json)", "name": "format", "in": "query", "required": true},
                    {"type": "string", "description": "Only sales of this product", "name": "product_id", "in": "query"},
                    {"type": "string", "description": "Start date (RFC 3339)", "name": "since", "in": "query"},
                    {"type": "string", "description": "End date (RFC 3339)", "name": "until", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/analytics/inventory": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Inventory totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory.InventorySummary"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/analytics/sales": {
            "get": {
                "description": "average_sale_value is null when no sale has been recorded",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Sales totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory.SalesSummary"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/analytics/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Dashboard aggregates",
                "parameters": [
                    {"type": "integer", "description": "Low stock threshold", "name": "threshold", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory.Dashboard"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.Meta": {
            "type": "object",
            "properties": {"total_count": {"type": "integer"}}
        },
        "handlers.ProductRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "stock": {"type": "integer"}
            }
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "stock": {"type": "integer"},
                "value": {"type": "number"},
                "low_stock": {"type": "boolean"}
            }
        },
        "handlers.ProductValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "handlers.ProductsSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.SaleRequest": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "handlers.SalesSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Sale"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.StockAdjustmentRequest": {
            "type": "object",
            "properties": {"delta": {"type": "integer"}}
        },
        "handlers.StockSetRequest": {
            "type": "object",
            "properties": {"stock": {"type": "integer"}}
        },
        "inventory.BestSeller": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "name": {"type": "string"},
                "units_sold": {"type": "integer"},
                "revenue": {"type": "number"}
            }
        },
        "inventory.DailyRevenue": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "total": {"type": "number"}
            }
        },
        "inventory.Dashboard": {
            "type": "object",
            "properties": {
                "inventory": {"$ref": "#/definitions/inventory.InventorySummary"},
                "sales": {"$ref": "#/definitions/inventory.SalesSummary"},
                "low_stock_threshold": {"type": "integer"},
                "low_stock_count": {"type": "integer"},
                "best_seller": {"$ref": "#/definitions/inventory.BestSeller"},
                "stock_by_product": {"type": "array", "items": {"$ref": "#/definitions/inventory.ProductStock"}},
                "daily_revenue": {"type": "array", "items": {"$ref": "#/definitions/inventory.DailyRevenue"}}
            }
        },
        "inventory.ImportResult": {
            "type": "object",
            "properties": {
                "imported": {"type": "integer"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/inventory.RowError"}}
            }
        },
        "inventory.InventorySummary": {
            "type": "object",
            "properties": {
                "total_products": {"type": "integer"},
                "total_stock_units": {"type": "integer"},
                "total_inventory_value": {"type": "number"}
            }
        },
        "inventory.ProductStock": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "name": {"type": "string"},
                "stock": {"type": "integer"}
            }
        },
        "inventory.RowError": {
            "type": "object",
            "properties": {
                "row": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "inventory.SalesSummary": {
            "type": "object",
            "properties": {
                "total_revenue": {"type": "number"},
                "transaction_count": {"type": "integer"},
                "average_sale_value": {"type": "number", "x-nullable": true}
            }
        },
        "models.Sale": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "product_name": {"type": "string"},
                "quantity": {"type": "integer"},
                "total": {"type": "number"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Supermarket API",
	Description:      "REST API for a supermarket product catalogue, stock levels and sales ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
