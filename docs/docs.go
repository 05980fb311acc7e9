// Package docs holds the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/usuarios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "List every user",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResp"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            }
        },
        "/api/usuarios/registro": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "register request body", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RegisterResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResp"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            }
        },
        "/api/usuarios/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Log in with correo and contraseña",
                "parameters": [
                    {"description": "login request body", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResp"}, "headers": {"set-cookie": {"type": "string", "description": "session cookie"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResp"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            }
        },
        "/api/usuarios/perfil": {
            "get": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Current user",
                "parameters": [
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            }
        },
        "/api/usuarios/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Revoke the token and end the session",
                "parameters": [
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResp"}}
                }
            }
        },
        "/api/usuarios/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Get a user by id",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Partially update a user",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResp"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Database and redis reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResp"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResp": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "code": {"type": "integer"}}
        },
        "dto.MessageResp": {
            "type": "object",
            "properties": {"mensaje": {"type": "string"}}
        },
        "dto.RegisterReq": {
            "type": "object",
            "required": ["nombre", "apellido", "cedula", "correo", "contraseña"],
            "properties": {
                "nombre": {"type": "string", "maxLength": 100},
                "apellido": {"type": "string", "maxLength": 100},
                "cedula": {"type": "string", "maxLength": 20},
                "telefono": {"type": "string", "maxLength": 20},
                "correo": {"type": "string", "maxLength": 100},
                "contraseña": {"type": "string", "maxLength": 72},
                "confirmar": {"type": "string", "maxLength": 72}
            }
        },
        "dto.RegisterResp": {
            "type": "object",
            "properties": {"mensaje": {"type": "string"}, "id": {"type": "integer"}}
        },
        "dto.LoginReq": {
            "type": "object",
            "properties": {"correo": {"type": "string"}, "contraseña": {"type": "string"}}
        },
        "dto.LoginUser": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "nombre": {"type": "string"}, "correo": {"type": "string"}}
        },
        "dto.LoginResp": {
            "type": "object",
            "properties": {
                "mensaje": {"type": "string"},
                "usuario": {"$ref": "#/definitions/dto.LoginUser"},
                "token": {"type": "string"},
                "expires_at": {"type": "integer"}
            }
        },
        "dto.UserResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "apellido": {"type": "string"},
                "cedula": {"type": "string"},
                "telefono": {"type": "string"},
                "correo": {"type": "string"}
            }
        },
        "dto.UpdateReq": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "apellido": {"type": "string"},
                "cedula": {"type": "string"},
                "telefono": {"type": "string"},
                "correo": {"type": "string"},
                "contraseña": {"type": "string"},
                "confirmar": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "smartparking user API",
	Description:      "User registration, login and management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
