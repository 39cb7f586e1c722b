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
        "/customers": {"get": {"tags": ["customers"], "summary": "List customers", "responses": {"200": {"description": "OK"}}}},
        "/customers/register": {"post": {"tags": ["customers"], "summary": "Register a customer", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/customers/login": {"post": {"tags": ["customers"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/customers/me": {"get": {"tags": ["customers"], "summary": "Current customer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/customers/{username}": {
            "get": {"tags": ["customers"], "summary": "Get a customer", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["customers"], "summary": "Update a customer", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["customers"], "summary": "Delete a customer", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/customers/{username}/charge": {"post": {"tags": ["wallet"], "summary": "Charge a wallet", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}, {"type": "string", "name": "Idempotency-Key", "in": "header"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/customers/{username}/deduct": {"post": {"tags": ["wallet"], "summary": "Deduct from a wallet", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}, {"type": "string", "name": "Idempotency-Key", "in": "header"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/customers/{username}/transactions": {"get": {"tags": ["wallet"], "summary": "Wallet transactions", "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/products": {
            "get": {"tags": ["products"], "summary": "List products", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["products"], "summary": "Create a product", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/products/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["products"], "summary": "Update a product", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["products"], "summary": "Delete a product", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/sales": {
            "get": {"tags": ["sales"], "summary": "List sales", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["sales"], "summary": "Record a sale", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/sales/{id}": {
            "get": {"tags": ["sales"], "summary": "Get a sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["sales"], "summary": "Update a sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["sales"], "summary": "Delete a sale", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/reviews/": {"post": {"tags": ["reviews"], "summary": "Create a review", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/reviews/{id}": {
            "get": {"tags": ["reviews"], "summary": "Get a review", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["reviews"], "summary": "Update a review", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["reviews"], "summary": "Delete a review", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/reviews/product/{id}": {"get": {"tags": ["reviews"], "summary": "Reviews of a product", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/reviews/customer/{id}": {"get": {"tags": ["reviews"], "summary": "Reviews by a customer", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/reviews/moderate/{id}": {"post": {"tags": ["reviews"], "summary": "Moderate a review", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/recommendations/{customer_id}": {"get": {"tags": ["recommendations"], "summary": "Recommend products", "parameters": [{"type": "integer", "name": "customer_id", "in": "path", "required": true}, {"type": "integer", "name": "top_n", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "429": {"description": "Too Many Requests"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront Services API",
	Description:      "Customers, inventory, sales, reviews and recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
