package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/go-services/internal/apierr"
	"github.com/studydesk/go-services/internal/generation"
	"github.com/studydesk/go-services/internal/note/repository"
	"github.com/studydesk/go-services/internal/note/service"
)

var classifiers = []apierr.Classifier{
	apierr.Sentinel(repository.ErrNotFound, apierr.KindNotFound),
	apierr.Sentinel(generation.ErrUnavailable, apierr.KindUpstream),
}

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type translateRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

// RegisterNoteRoutes mounts the notes CRUD endpoints and the generation
// features (summarize, quiz, translate).
func RegisterNoteRoutes(r gin.IRouter, svc *service.Service) {
	r.POST("/notes", func(c *gin.Context) {
		var req noteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.Validation("invalid note: %v", err))
			return
		}
		n, err := svc.Create(c.Request.Context(), req.Title, req.Content)
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, n)
	})

	r.GET("/notes", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/notes/:id", func(c *gin.Context) {
		n, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, n)
	})

	r.PUT("/notes/:id", func(c *gin.Context) {
		var req noteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.Validation("invalid note: %v", err))
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), req.Title, req.Content); err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Not güncellendi"})
	})

	r.DELETE("/notes/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Not silindi"})
	})

	r.POST("/notes/:id/summarize", func(c *gin.Context) {
		summary, err := svc.Summarize(c.Request.Context(), c.Param("id"))
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": summary})
	})

	r.POST("/notes/:id/quiz", func(c *gin.Context) {
		quiz, err := svc.Quiz(c.Request.Context(), c.Param("id"))
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"quiz": quiz})
	})

	r.POST("/translate", func(c *gin.Context) {
		var req translateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.Validation("invalid translation request: %v", err))
			return
		}
		out, err := svc.Translate(c.Request.Context(), req.Text, req.TargetLanguage)
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"translated_text": out})
	})
}
