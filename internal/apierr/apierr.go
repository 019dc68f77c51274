// Package apierr maps domain failures onto HTTP responses.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/go-services/pkg/logger"
)

// Kind classifies a failure for the HTTP boundary.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindValidation      Kind = "validation_failure"
	KindUpstream        Kind = "upstream_unavailable"
	KindMalformedOutput Kind = "malformed_generation_output"
	KindStore           Kind = "store_failure"
)

// Status returns the HTTP status for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func NotFound(msg string) *Error { return New(KindNotFound, msg, nil) }

func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...), nil)
}

// Classifier turns a domain error into a classified one; it returns nil when
// it does not recognise the error.
type Classifier func(err error) *Error

// Respond writes err as a JSON error body. Errors that are not *Error are
// offered to the classifiers in order and fall back to a store failure.
func Respond(c *gin.Context, err error, classifiers ...Classifier) {
	ae := classify(err, classifiers)
	status := ae.Kind.Status()
	if status >= http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		logger.Debugf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": string(ae.Kind), "message": ae.Error()})
}

func classify(err error, classifiers []Classifier) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	for _, cl := range classifiers {
		if got := cl(err); got != nil {
			return got
		}
	}
	return New(KindStore, "storage operation failed", err)
}

// Sentinel classifies any error matching target with errors.Is as kind,
// keeping the full error text as the message.
func Sentinel(target error, kind Kind) Classifier {
	return func(err error) *Error {
		if errors.Is(err, target) {
			return New(kind, err.Error(), nil)
		}
		return nil
	}
}
