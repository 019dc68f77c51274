package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the studydesk API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>studydesk - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the notes, students and test-plan endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "studydesk", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Error": {"type":"object","properties":{"error":{"type":"string","enum":["not_found","validation_failure","upstream_unavailable","malformed_generation_output","store_failure"]},"message":{"type":"string"}}},
      "NoteInput": {"type":"object","required":["title"],"properties":{"title":{"type":"string"},"content":{"type":"string"}}},
      "Note": {"type":"object","properties":{"id":{"type":"string"},"title":{"type":"string"},"content":{"type":"string"},"timestamp":{"type":"string","format":"date-time"}}},
      "Course": {"type":"object","required":["course_name","grade"],"properties":{"course_name":{"type":"string"},"grade":{"type":"string"}}},
      "Student": {"type":"object","required":["student_id","first_name","last_name","age","courses"],"properties":{"student_id":{"type":"string"},"first_name":{"type":"string"},"last_name":{"type":"string"},"age":{"type":"integer","minimum":0},"courses":{"type":"array","items":{"$ref":"#/components/schemas/Course"}}}},
      "Task": {"type":"object","properties":{"Task Name":{"type":"string"},"Description":{"type":"string"},"Start Date":{"type":"string","format":"date"},"End Date":{"type":"string","format":"date"},"Duration (days)":{"type":"number"}}},
      "TestPlan": {"type":"object","properties":{"json_data":{"type":"array","items":{"$ref":"#/components/schemas/Task"}},"download_url":{"type":"string"}}}
    }
  },
  "paths": {
    "/notes": {
      "get": { "summary": "List notes", "responses": { "200": { "description": "notes", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Note"}}}}}}},
      "post": { "summary": "Create a note", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NoteInput"}}}}, "responses": { "200": { "description": "created note" }, "400": { "description": "invalid note" } } }
    },
    "/notes/{id}": {
      "get": { "summary": "Get a note", "responses": { "200": { "description": "note" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace title and content", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NoteInput"}}}}, "responses": { "200": { "description": "updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a note", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/notes/{id}/summarize": {
      "post": { "summary": "Summarize a note", "responses": { "200": { "description": "{summary}" }, "400": { "description": "empty content" }, "404": { "description": "not found" }, "500": { "description": "generation failed" } } }
    },
    "/notes/{id}/quiz": {
      "post": { "summary": "Generate a five-question quiz (markdown)", "responses": { "200": { "description": "{quiz}" }, "400": { "description": "empty content" }, "404": { "description": "not found" }, "500": { "description": "generation failed" } } }
    },
    "/translate": {
      "post": { "summary": "Translate text", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["text","target_language"],"properties":{"text":{"type":"string"},"target_language":{"type":"string"}}}}}}, "responses": { "200": { "description": "{translated_text}" }, "400": { "description": "blank input" }, "500": { "description": "generation failed" } } }
    },
    "/students": {
      "get": { "summary": "List students", "responses": { "200": { "description": "{students}" } } }
    },
    "/students/{student_id}": {
      "get": { "summary": "Get the first student with this id", "responses": { "200": { "description": "student" }, "404": { "description": "not found" } } }
    },
    "/add_student": {
      "post": { "summary": "Add a student (ids are not checked for uniqueness)", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Student"}}}}, "responses": { "200": { "description": "{message}" }, "400": { "description": "invalid student" } } }
    },
    "/delete_student/{student_id}": {
      "delete": { "summary": "Delete the first student with this id", "responses": { "200": { "description": "{message}" }, "404": { "description": "not found" } } }
    },
    "/generate_test_plan": {
      "post": { "summary": "Generate an ISTQB test plan from document content", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["content"],"properties":{"content":{"type":"string"}}}}}}, "responses": { "200": { "description": "plan", "content": { "application/json": { "schema": {"$ref":"#/components/schemas/TestPlan"}}}}, "500": { "description": "generation failed or malformed output" } } }
    },
    "/generate_test_plan/upload": {
      "post": { "summary": "Generate a test plan from an uploaded .txt, .md or .pdf file", "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"file":{"type":"string","format":"binary"}}}}}}, "responses": { "200": { "description": "plan" }, "400": { "description": "unreadable upload" } } }
    },
    "/test_plans": {
      "get": { "summary": "List recorded test-plan generations", "responses": { "200": { "description": "{test_plans}" } } }
    },
    "/download/{filename}": {
      "get": { "summary": "Download a generated spreadsheet", "responses": { "200": { "description": "xlsx file" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
