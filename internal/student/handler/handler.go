package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/go-services/internal/apierr"
	"github.com/studydesk/go-services/internal/student"
	"github.com/studydesk/go-services/internal/student/repository"
)

var classifiers = []apierr.Classifier{
	apierr.Sentinel(repository.ErrNotFound, apierr.KindNotFound),
}

// RegisterStudentRoutes mounts the student endpoints. The repository is used
// directly; there is no logic beyond validation between the two.
func RegisterStudentRoutes(r gin.IRouter, repo repository.Repository) {
	r.GET("/students", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"students": list})
	})

	r.GET("/students/:student_id", func(c *gin.Context) {
		s, err := repo.GetByStudentID(c.Request.Context(), c.Param("student_id"))
		if err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, s)
	})

	r.POST("/add_student", func(c *gin.Context) {
		var s student.Student
		if err := c.ShouldBindJSON(&s); err != nil {
			apierr.Respond(c, apierr.Validation("invalid student: %v", err))
			return
		}
		if err := repo.Create(c.Request.Context(), &s); err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Öğrenci '%s %s' başarıyla eklendi!", s.FirstName, s.LastName)})
	})

	r.DELETE("/delete_student/:student_id", func(c *gin.Context) {
		id := c.Param("student_id")
		if err := repo.DeleteByStudentID(c.Request.Context(), id); err != nil {
			apierr.Respond(c, err, classifiers...)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Öğrenci '%s' başarıyla silindi!", id)})
	})
}
