package service

import (
	"context"
	"strings"
	"time"

	"github.com/studydesk/go-services/internal/apierr"
	"github.com/studydesk/go-services/internal/generation"
	"github.com/studydesk/go-services/internal/note"
	"github.com/studydesk/go-services/internal/note/repository"
	"github.com/studydesk/go-services/internal/prompt"
	"github.com/studydesk/go-services/pkg/logger"
)

// Service implements note CRUD and the generation features built on notes.
type Service struct {
	repo repository.Repository
	gen  generation.Generator
	now  func() time.Time
}

func New(repo repository.Repository, gen generation.Generator) *Service {
	return &Service{repo: repo, gen: gen, now: time.Now}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(gen generation.Generator) *Service {
	return New(repository.NewMemoryRepo(), gen)
}

// Create stores a new note stamped with the current time.
func (s *Service) Create(ctx context.Context, title, content string) (*note.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apierr.Validation("title must not be empty")
	}
	n := &note.Note{Title: title, Content: content, Timestamp: s.now().Format(time.RFC3339)}
	if _, err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) Get(ctx context.Context, id string) (*note.Note, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*note.Note, error) {
	return s.repo.List(ctx)
}

// Update replaces title and content; the timestamp is left untouched.
func (s *Service) Update(ctx context.Context, id, title, content string) error {
	if strings.TrimSpace(title) == "" {
		return apierr.Validation("title must not be empty")
	}
	return s.repo.Update(ctx, id, title, content)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Summarize returns a short summary of the note's content.
func (s *Service) Summarize(ctx context.Context, id string) (string, error) {
	content, err := s.contentOf(ctx, id)
	if err != nil {
		return "", err
	}
	return s.gen.Generate(ctx, "summarize", prompt.Summarize(content))
}

// Quiz returns the markdown quiz generated from the note's content.
func (s *Service) Quiz(ctx context.Context, id string) (string, error) {
	content, err := s.contentOf(ctx, id)
	if err != nil {
		return "", err
	}
	return s.gen.Generate(ctx, "quiz", prompt.Quiz(content))
}

// Translate translates free text; it does not touch the store.
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apierr.Validation("text must not be empty")
	}
	if strings.TrimSpace(targetLanguage) == "" {
		return "", apierr.Validation("target_language must not be empty")
	}
	return s.gen.Generate(ctx, "translate", prompt.Translate(text, targetLanguage))
}

// contentOf loads a note and rejects blank content before any generation call.
func (s *Service) contentOf(ctx context.Context, id string) (string, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(n.Content) == "" {
		logger.Debugf("note %s has empty content; skipping generation", id)
		return "", apierr.Validation("note content is empty")
	}
	return n.Content, nil
}
