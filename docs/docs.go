// Package docs registers the OpenAPI description served at /swagger. It is
// kept in step with the handler annotations; `swag init -g cmd/api/main.go`
// rebuilds it from them.
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
		"/auth": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				]
			}
		},
		"/auth/status": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Session status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Logout",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/auth/change-password": {
			"put": {
				"tags": [
					"auth"
				],
				"summary": "Change password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.ChangePasswordInput"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/auth/send-verification": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Send verification code",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.emailRequest"
						}
					}
				]
			}
		},
		"/auth/verify-email": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Verify email",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.verifyEmailRequest"
						}
					}
				]
			}
		},
		"/auth/forgot-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Forgot password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.emailRequest"
						}
					}
				]
			}
		},
		"/auth/reset-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Reset password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.ResetPasswordInput"
						}
					}
				]
			}
		},
		"/parent/create": {
			"post": {
				"tags": [
					"provisioning"
				],
				"summary": "Create parent",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createParentRequest"
						}
					}
				]
			}
		},
		"/kid/create": {
			"post": {
				"tags": [
					"provisioning"
				],
				"summary": "Create kid",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createKidRequest"
						}
					}
				]
			}
		},
		"/teacher/create": {
			"post": {
				"tags": [
					"provisioning"
				],
				"summary": "Create teacher",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createTeacherRequest"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/admin/create": {
			"post": {
				"tags": [
					"provisioning"
				],
				"summary": "Create admin",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createAdminRequest"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/kid/{kidId}": {
			"get": {
				"tags": [
					"kids"
				],
				"summary": "Get a kid profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "kidId",
						"required": true,
						"type": "string",
						"description": "Kid profile id"
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			},
			"put": {
				"tags": [
					"kids"
				],
				"summary": "Update a kid profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "kidId",
						"required": true,
						"type": "string",
						"description": "Kid profile id"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.updateKidRequest"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			},
			"delete": {
				"tags": [
					"kids"
				],
				"summary": "Delete a kid",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "kidId",
						"required": true,
						"type": "string",
						"description": "Kid profile id"
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/kid/parent/{parentId}": {
			"get": {
				"tags": [
					"kids"
				],
				"summary": "List a parent's kids",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "parentId",
						"required": true,
						"type": "string",
						"description": "Parent profile id"
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/course": {
			"get": {
				"tags": [
					"courses"
				],
				"summary": "List courses",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "page",
						"type": "integer",
						"description": "Page (default 1)"
					},
					{
						"in": "query",
						"name": "limit",
						"type": "integer",
						"description": "Page size (default 10, max 100)"
					},
					{
						"in": "query",
						"name": "category",
						"type": "string",
						"description": "Category, partial and case-insensitive"
					},
					{
						"in": "query",
						"name": "ageGroup",
						"type": "string",
						"enum": [
							"3-5",
							"6-9",
							"10-12",
							"13+"
						],
						"description": "Age group"
					},
					{
						"in": "query",
						"name": "instructor",
						"type": "string",
						"description": "Teacher profile id"
					},
					{
						"in": "query",
						"name": "isPremium",
						"type": "boolean",
						"description": "Premium filter"
					},
					{
						"in": "query",
						"name": "isPublished",
						"type": "boolean",
						"description": "Published filter (teachers and admins)"
					},
					{
						"in": "query",
						"name": "sortBy",
						"type": "string",
						"description": "createdAt, title, ageGroup or level"
					},
					{
						"in": "query",
						"name": "sortOrder",
						"type": "string",
						"description": "asc or desc"
					}
				]
			},
			"post": {
				"tags": [
					"courses"
				],
				"summary": "Create a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.CourseInput"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/course/category/{category}": {
			"get": {
				"tags": [
					"courses"
				],
				"summary": "List published courses of a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "category",
						"required": true,
						"type": "string",
						"description": "Category, partial and case-insensitive"
					},
					{
						"in": "query",
						"name": "page",
						"type": "integer",
						"description": "Page (default 1)"
					},
					{
						"in": "query",
						"name": "limit",
						"type": "integer",
						"description": "Page size (default 10, max 100)"
					},
					{
						"in": "query",
						"name": "sortBy",
						"type": "string",
						"description": "createdAt, title, ageGroup or level"
					},
					{
						"in": "query",
						"name": "sortOrder",
						"type": "string",
						"description": "asc or desc"
					}
				]
			}
		},
		"/course/{courseId}": {
			"get": {
				"tags": [
					"courses"
				],
				"summary": "Get a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "courseId",
						"required": true,
						"type": "string",
						"description": "Course id"
					}
				]
			},
			"put": {
				"tags": [
					"courses"
				],
				"summary": "Update a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "courseId",
						"required": true,
						"type": "string",
						"description": "Course id"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.CourseInput"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			},
			"delete": {
				"tags": [
					"courses"
				],
				"summary": "Delete a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "courseId",
						"required": true,
						"type": "string",
						"description": "Course id"
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/lesson": {
			"post": {
				"tags": [
					"lessons"
				],
				"summary": "Create a lesson",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.LessonInput"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/lesson/course/{courseId}": {
			"get": {
				"tags": [
					"lessons"
				],
				"summary": "List the lessons of a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "courseId",
						"required": true,
						"type": "string",
						"description": "Course id"
					},
					{
						"in": "query",
						"name": "page",
						"type": "integer",
						"description": "Page (default 1)"
					},
					{
						"in": "query",
						"name": "limit",
						"type": "integer",
						"description": "Page size (default 10, max 100)"
					},
					{
						"in": "query",
						"name": "isPublished",
						"type": "boolean",
						"description": "Published filter (teachers and admins)"
					},
					{
						"in": "query",
						"name": "sortBy",
						"type": "string",
						"description": "order, title, createdAt or updatedAt"
					},
					{
						"in": "query",
						"name": "sortOrder",
						"type": "string",
						"description": "asc (default) or desc"
					}
				]
			}
		},
		"/lesson/{lessonId}": {
			"get": {
				"tags": [
					"lessons"
				],
				"summary": "Get a lesson",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "lessonId",
						"required": true,
						"type": "string",
						"description": "Lesson id"
					}
				]
			},
			"put": {
				"tags": [
					"lessons"
				],
				"summary": "Update a lesson",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "lessonId",
						"required": true,
						"type": "string",
						"description": "Lesson id"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.LessonInput"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			},
			"delete": {
				"tags": [
					"lessons"
				],
				"summary": "Delete a lesson and its tests",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "lessonId",
						"required": true,
						"type": "string",
						"description": "Lesson id"
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/test": {
			"post": {
				"tags": [
					"tests"
				],
				"summary": "Create a test for a lesson",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.AssessmentInput"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		},
		"/test/course/{courseId}": {
			"get": {
				"tags": [
					"tests"
				],
				"summary": "List the tests of every lesson of a course",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "courseId",
						"required": true,
						"type": "string",
						"description": "Course id"
					},
					{
						"in": "query",
						"name": "page",
						"type": "integer",
						"description": "Page (default 1)"
					},
					{
						"in": "query",
						"name": "limit",
						"type": "integer",
						"description": "Page size (default 10, max 100)"
					},
					{
						"in": "query",
						"name": "sortBy",
						"type": "string",
						"description": "createdAt, title or totalPoints"
					},
					{
						"in": "query",
						"name": "sortOrder",
						"type": "string",
						"description": "asc or desc (default)"
					}
				]
			}
		},
		"/test/lesson/{lessonId}": {
			"get": {
				"tags": [
					"tests"
				],
				"summary": "List the tests of a lesson",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "lessonId",
						"required": true,
						"type": "string",
						"description": "Lesson id"
					},
					{
						"in": "query",
						"name": "page",
						"type": "integer",
						"description": "Page (default 1)"
					},
					{
						"in": "query",
						"name": "limit",
						"type": "integer",
						"description": "Page size (default 10, max 100)"
					},
					{
						"in": "query",
						"name": "sortBy",
						"type": "string",
						"description": "createdAt, title or totalPoints"
					},
					{
						"in": "query",
						"name": "sortOrder",
						"type": "string",
						"description": "asc or desc (default)"
					}
				]
			}
		},
		"/test/{testId}": {
			"get": {
				"tags": [
					"tests"
				],
				"summary": "Get a test",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "testId",
						"required": true,
						"type": "string",
						"description": "Test id"
					}
				]
			},
			"put": {
				"tags": [
					"tests"
				],
				"summary": "Update a test",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "testId",
						"required": true,
						"type": "string",
						"description": "Test id"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ports.AssessmentInput"
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			},
			"delete": {
				"tags": [
					"tests"
				],
				"summary": "Delete a test",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "testId",
						"required": true,
						"type": "string",
						"description": "Test id"
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				]
			}
		}
	},
	"definitions": {
		"handler.Response": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"handler.loginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handler.emailRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"handler.verifyEmailRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"code": {
					"type": "string"
				}
			}
		},
		"handler.createParentRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"fullName": {
					"type": "string"
				},
				"dateOfBirth": {
					"type": "string",
					"example": "1988-03-21"
				},
				"gender": {
					"type": "string",
					"enum": [
						"male",
						"female"
					]
				},
				"image": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				}
			}
		},
		"handler.createKidRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"fullName": {
					"type": "string"
				},
				"dateOfBirth": {
					"type": "string",
					"example": "2016-07-15"
				},
				"gender": {
					"type": "string",
					"enum": [
						"male",
						"female"
					]
				},
				"parentId": {
					"type": "string"
				}
			}
		},
		"handler.createTeacherRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"fullName": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				},
				"specializations": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"bio": {
					"type": "string"
				}
			}
		},
		"handler.createAdminRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"fullName": {
					"type": "string"
				},
				"phoneNumber": {
					"type": "string"
				}
			}
		},
		"handler.updateKidRequest": {
			"type": "object",
			"properties": {
				"fullName": {
					"type": "string"
				},
				"dateOfBirth": {
					"type": "string"
				},
				"gender": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				},
				"unlockedAvatars": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"points": {
					"type": "integer"
				},
				"level": {
					"type": "integer"
				},
				"streak": {
					"type": "object",
					"properties": {
						"current": {
							"type": "integer"
						},
						"longest": {
							"type": "integer"
						}
					}
				}
			}
		},
		"ports.ChangePasswordInput": {
			"type": "object",
			"properties": {
				"currentPassword": {
					"type": "string"
				},
				"newPassword": {
					"type": "string"
				},
				"confirmPassword": {
					"type": "string"
				}
			}
		},
		"ports.ResetPasswordInput": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"newPassword": {
					"type": "string"
				},
				"confirmPassword": {
					"type": "string"
				}
			}
		},
		"ports.CourseInput": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"ageGroup": {
					"type": "string",
					"enum": [
						"3-5",
						"6-9",
						"10-12",
						"13+"
					]
				},
				"level": {
					"type": "string",
					"enum": [
						"basic",
						"intermediate",
						"advanced"
					]
				},
				"instructor": {
					"type": "string"
				},
				"thumbnail": {
					"type": "string"
				},
				"isPremium": {
					"type": "boolean"
				},
				"isPublished": {
					"type": "boolean"
				}
			}
		},
		"ports.LessonInput": {
			"type": "object",
			"properties": {
				"courseId": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"linkVideo": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"level": {
					"type": "string",
					"enum": [
						"basic",
						"intermediate",
						"advanced"
					]
				},
				"ageGroup": {
					"type": "string",
					"enum": [
						"3-5",
						"6-9",
						"10-12",
						"13+"
					]
				},
				"order": {
					"type": "integer"
				},
				"isPublished": {
					"type": "boolean"
				}
			}
		},
		"ports.QuestionInput": {
			"type": "object",
			"properties": {
				"questionText": {
					"type": "string"
				},
				"questionType": {
					"type": "string",
					"enum": [
						"multiple-choice",
						"true-false",
						"open-ended"
					]
				},
				"options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"correctAnswer": {
					"description": "Option text, true/false, or free text"
				},
				"points": {
					"type": "integer"
				}
			}
		},
		"ports.AssessmentInput": {
			"type": "object",
			"properties": {
				"lessonId": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"questions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.QuestionInput"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"SessionCookie": {
			"type": "apiKey",
			"name": "dailymate.sid",
			"in": "cookie"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DailyMate API",
	Description:      "Accounts, role profiles, sessions, courses, lessons and tests for the DailyMate learning platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
