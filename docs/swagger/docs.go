// Package swagger registers the OpenAPI document of the movie manager API with swag.
// It is maintained by hand alongside the handler annotations.
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
    "paths": {
        "/backups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backups"],
                "summary": "List Backups",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/backup.Info"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Writes every stored movie to a new JSON backup in the storage bucket.",
                "produces": ["application/json"],
                "tags": ["backups"],
                "summary": "Export Backup",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/backup.Info"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["backups"],
                "summary": "Delete Backup",
                "parameters": [
                    {"type": "string", "description": "Backup object name", "name": "object", "in": "query", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/backups/import": {
            "post": {
                "produces": ["application/json"],
                "tags": ["backups"],
                "summary": "Import Backup",
                "parameters": [
                    {"type": "string", "description": "Backup object name", "name": "object", "in": "query", "required": true},
                    {"type": "boolean", "description": "Only build the plan", "name": "dry_run", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/movies.Result"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Checks the movie tables against their models and the backup bucket.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {"description": "Combined Report", "schema": {"$ref": "#/definitions/integrity.Report"}}
                }
            }
        },
        "/integrity/database": {
            "get": {
                "description": "Checks that the movie tables have the columns and types of their models.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Database Schema",
                "responses": {
                    "200": {"description": "Schema Report", "schema": {"$ref": "#/definitions/checks.SchemaReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/storage": {
            "get": {
                "description": "Checks that the backup bucket exists. Optionally creates it.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Storage",
                "parameters": [
                    {"type": "boolean", "description": "Create a missing bucket", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Storage Report", "schema": {"$ref": "#/definitions/checks.StorageReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List Movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Movie"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Saves a movie locally and mirrors it to the remote store in the background.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Create Movie",
                "parameters": [
                    {"description": "Movie", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/movies.CreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Movie"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/movies/reconcile": {
            "post": {
                "description": "Updates matched movies and creates unmatched ones from a batch of representations.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Reconcile Movies",
                "parameters": [
                    {"type": "boolean", "description": "Only build the plan", "name": "dry_run", "in": "query"},
                    {"description": "Representations", "name": "request", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MovieRepresentation"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/movies.Result"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/movies/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Search Catalog",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "query", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MovieRepresentation"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Catalog error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/movies/sync": {
            "post": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Sync From Remote",
                "parameters": [
                    {"type": "boolean", "description": "Only build the plan", "name": "dry_run", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/movies.Result"}},
                    "502": {"description": "Remote error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/movies/{identifier}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get Movie",
                "parameters": [
                    {"type": "string", "description": "Movie identifier (UUID)", "name": "identifier", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Movie"}},
                    "400": {"description": "Invalid identifier", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["movies"],
                "summary": "Delete Movie",
                "parameters": [
                    {"type": "string", "description": "Movie identifier (UUID)", "name": "identifier", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Set Watched",
                "parameters": [
                    {"type": "string", "description": "Movie identifier (UUID)", "name": "identifier", "in": "path", "required": true},
                    {"description": "Watched flag", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/movies.WatchedRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Movie"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "backup.Info": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "last_modified": {"type": "string"},
                "object": {"type": "string"},
                "size": {"type": "integer"}
            }
        },
        "checks.SchemaReport": {
            "type": "object",
            "properties": {
                "driver": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "matched": {"type": "boolean"},
                "tables": {"type": "object", "additionalProperties": {"$ref": "#/definitions/checks.TableReport"}}
            }
        },
        "checks.StorageReport": {
            "type": "object",
            "properties": {
                "backups": {"type": "integer"},
                "bucket": {"type": "string"},
                "exists": {"type": "boolean"},
                "fixed": {"type": "boolean"}
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "type_mismatches": {"type": "array", "items": {"type": "string"}}
            }
        },
        "integrity.Report": {
            "type": "object",
            "properties": {
                "database": {"$ref": "#/definitions/checks.SchemaReport"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "healthy": {"type": "boolean"},
                "storage": {"$ref": "#/definitions/checks.StorageReport"}
            }
        },
        "models.Movie": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "hasWatched": {"type": "boolean"},
                "identifier": {"type": "string"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.MovieRepresentation": {
            "type": "object",
            "properties": {
                "hasWatched": {"type": "boolean"},
                "identifier": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "movies.CreateRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}
            }
        },
        "movies.Result": {
            "type": "object",
            "properties": {
                "dry_run": {"type": "boolean"},
                "executed": {"type": "integer"},
                "plan": {"$ref": "#/definitions/reconcile.Plan"}
            }
        },
        "movies.WatchedRequest": {
            "type": "object",
            "properties": {
                "hasWatched": {"type": "boolean"}
            }
        },
        "reconcile.Action": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "reason": {"type": "string"},
                "type": {"$ref": "#/definitions/reconcile.ActionType"}
            }
        },
        "reconcile.ActionType": {
            "type": "string",
            "enum": ["update_local", "create_local", "skip"],
            "x-enum-varnames": ["ActionUpdateLocal", "ActionCreateLocal", "ActionSkip"]
        },
        "reconcile.Plan": {
            "type": "object",
            "properties": {
                "actions": {"type": "array", "items": {"$ref": "#/definitions/reconcile.Action"}},
                "summary": {"$ref": "#/definitions/reconcile.Summary"}
            }
        },
        "reconcile.Summary": {
            "type": "object",
            "properties": {
                "creates": {"type": "integer"},
                "duplicates": {"type": "integer"},
                "skipped": {"type": "integer"},
                "total_items": {"type": "integer"},
                "unkeyed": {"type": "integer"},
                "updates": {"type": "integer"}
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
	Title:            "Movie Manager API",
	Description:      "API for tracking movies to watch, backed by TMDB search and a Firebase-style remote store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
