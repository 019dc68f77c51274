package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/studydesk/go-services/internal/apierr"
	"github.com/studydesk/go-services/internal/extract"
	"github.com/studydesk/go-services/internal/generation"
	"github.com/studydesk/go-services/internal/prompt"
	"github.com/studydesk/go-services/internal/storage"
	"github.com/studydesk/go-services/internal/testplan"
	"github.com/studydesk/go-services/internal/testplan/repository"
	"github.com/studydesk/go-services/internal/textextract"
	"github.com/studydesk/go-services/pkg/logger"
	"github.com/studydesk/go-services/pkg/metrics"
)

type Options struct {
	// PublicURL prefixes download links, e.g. http://localhost:8000.
	PublicURL string
	// UniqueNames gives every generation its own artifact instead of
	// overwriting test_plan.xlsx.
	UniqueNames bool
}

// Result is what a successful generation returns to the caller.
type Result struct {
	Tasks       []extract.Object `json:"json_data"`
	DownloadURL string           `json:"download_url"`
	Artifact    string           `json:"-"`
	RecordID    string           `json:"-"`
}

type Service struct {
	repo  repository.Repository
	gen   generation.Generator
	store storage.Store
	opts  Options
	now   func() time.Time

	// serializes writes to the shared fixed artifact name
	writeMu sync.Mutex
}

func New(repo repository.Repository, gen generation.Generator, store storage.Store, opts Options) *Service {
	opts.PublicURL = strings.TrimRight(opts.PublicURL, "/")
	return &Service{repo: repo, gen: gen, store: store, opts: opts, now: time.Now}
}

// Generate runs the full flow for one document: prompt, generation, audit
// record, extraction, spreadsheet. The record is written before extraction,
// so malformed output is never lost.
func (s *Service) Generate(ctx context.Context, content string) (*Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apierr.Validation("content must not be empty")
	}
	now := s.now()

	raw, err := s.gen.Generate(ctx, "test_plan", prompt.TestPlan(content, now))
	if err != nil {
		return nil, err
	}

	rec := &testplan.Record{InputContent: content, GeneratedOutput: raw, Timestamp: now.UTC()}
	if _, err := s.repo.Create(ctx, rec); err != nil {
		return nil, apierr.New(apierr.KindStore, "could not persist test plan record", err)
	}
	logger.Debugf("test plan record %s stored (%d bytes of output)", rec.ID, len(raw))

	tasks, err := extract.JSONArray(raw)
	if err != nil {
		metrics.ExtractionFailures.Inc()
		logger.Warnf("test plan record %s: %v", rec.ID, err)
		return nil, apierr.New(apierr.KindMalformedOutput,
			"generated output does not contain a valid JSON array; output: "+raw, err)
	}

	name, err := s.writeArtifact(ctx, tasks)
	if err != nil {
		return nil, err
	}
	return &Result{
		Tasks:       tasks,
		DownloadURL: s.opts.PublicURL + "/download/" + name,
		Artifact:    name,
		RecordID:    rec.ID,
	}, nil
}

// GenerateFromFile extracts text from an uploaded document and generates a
// plan from it.
func (s *Service) GenerateFromFile(ctx context.Context, filename string, data []byte) (*Result, error) {
	content, err := textextract.FromFile(filename, data)
	if err != nil {
		return nil, apierr.New(apierr.KindValidation, "could not read "+filename, err)
	}
	return s.Generate(ctx, content)
}

func (s *Service) writeArtifact(ctx context.Context, tasks []extract.Object) (string, error) {
	body, err := testplan.RenderXLSX(tasks)
	if err != nil {
		return "", apierr.New(apierr.KindStore, "could not render spreadsheet", err)
	}

	name := testplan.DefaultArtifactName
	if s.opts.UniqueNames {
		name = fmt.Sprintf("test_plan_%s.xlsx", uuid.NewString())
	} else {
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
	}

	if err := s.store.Put(ctx, name, bytes.NewReader(body), int64(len(body)), testplan.XLSXContentType); err != nil {
		return "", apierr.New(apierr.KindStore, "could not store spreadsheet", err)
	}
	metrics.ArtifactsWritten.WithLabelValues(s.store.Backend()).Inc()
	logger.Infof("test plan artifact %s written to %s storage (%d tasks)", name, s.store.Backend(), len(tasks))
	return name, nil
}

// Records lists every stored generation.
func (s *Service) Records(ctx context.Context) ([]*testplan.Record, error) {
	return s.repo.List(ctx)
}

// OpenArtifact returns a previously written spreadsheet. Names that are not
// plain file names are reported as not found.
func (s *Service) OpenArtifact(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	if !storage.ValidName(name) {
		return nil, 0, storage.ErrNotFound
	}
	return s.store.Open(ctx, name)
}
