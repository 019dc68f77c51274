package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/go-services/internal/apierr"
	"github.com/studydesk/go-services/internal/generation"
	"github.com/studydesk/go-services/internal/storage"
	"github.com/studydesk/go-services/internal/testplan"
	"github.com/studydesk/go-services/internal/testplan/service"
)

// MaxUploadBytes bounds multipart uploads to /generate_test_plan/upload.
const MaxUploadBytes = 20 << 20

var classifiers = []apierr.Classifier{
	apierr.Sentinel(generation.ErrUnavailable, apierr.KindUpstream),
	apierr.Sentinel(storage.ErrNotFound, apierr.KindNotFound),
}

type generateRequest struct {
	Content string `json:"content" binding:"required"`
}

func RegisterTestPlanRoutes(r gin.IRouter, svc *service.Service) {
	r.POST("/generate_test_plan", func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.Validation("invalid request: %v", err))
			return
		}
		res, err := svc.Generate(c.Request.Context(), req.Content)
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, res)
	})

	r.POST("/generate_test_plan/upload", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			apierr.Respond(c, apierr.Validation("multipart field \"file\" is required"))
			return
		}
		if fh.Size > MaxUploadBytes {
			apierr.Respond(c, apierr.Validation("file is larger than %d bytes", MaxUploadBytes))
			return
		}
		f, err := fh.Open()
		if err != nil {
			apierr.Respond(c, apierr.Validation("could not open upload: %v", err))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			apierr.Respond(c, apierr.Validation("could not read upload: %v", err))
			return
		}
		res, err := svc.GenerateFromFile(c.Request.Context(), fh.Filename, data)
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, res)
	})

	r.GET("/test_plans", func(c *gin.Context) {
		list, err := svc.Records(c.Request.Context())
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"test_plans": list})
	})

	r.GET("/download/:filename", func(c *gin.Context) {
		name := c.Param("filename")
		rc, size, err := svc.OpenArtifact(c.Request.Context(), name)
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		defer rc.Close()
		c.DataFromReader(http.StatusOK, size, testplan.XLSXContentType, rc, map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", name),
		})
	})
}
