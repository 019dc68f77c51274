package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/studydesk/go-services/internal/storage"
	"github.com/studydesk/go-services/internal/testplan"
	"github.com/studydesk/go-services/internal/testplan/repository"
	"github.com/studydesk/go-services/internal/testplan/service"
	"github.com/studydesk/go-services/internal/textextract/pdftest"
)

const planOutput = "Here is the plan:\n" +
	`[{"Task Name":"A","Description":"d","Start Date":"2025-01-01","End Date":"2025-01-02","Duration (days)":1}]`

type fakeGen struct {
	reply string
	calls int
}

func (f *fakeGen) Generate(ctx context.Context, kind, prompt string) (string, error) {
	f.calls++
	return f.reply, nil
}

func setup(t *testing.T, gen *fakeGen) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := service.New(repository.NewMemoryRepo(), gen, store, service.Options{PublicURL: "http://localhost:8000"})
	g := gin.New()
	RegisterTestPlanRoutes(g, svc)
	return g
}

func TestTestPlanHandler_GenerateAndDownload(t *testing.T) {
	g := setup(t, &fakeGen{reply: planOutput})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_test_plan", strings.NewReader(`{"content":"doc"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		JSONData    json.RawMessage `json:"json_data"`
		DownloadURL string          `json:"download_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.JSONEq(t, `[{"Task Name":"A","Description":"d","Start Date":"2025-01-01","End Date":"2025-01-02","Duration (days)":1}]`, string(body.JSONData))
	require.Equal(t, "http://localhost:8000/download/test_plan.xlsx", body.DownloadURL)

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download/test_plan.xlsx", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, testplan.XLSXContentType, w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), `filename="test_plan.xlsx"`)
	require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test_plans", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		TestPlans []testplan.Record `json:"test_plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.TestPlans, 1)
	require.Equal(t, planOutput, list.TestPlans[0].GeneratedOutput)
}

func TestTestPlanHandler_MalformedOutput(t *testing.T) {
	g := setup(t, &fakeGen{reply: "] no array here ["})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_test_plan", strings.NewReader(`{"content":"doc"}`))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "malformed_generation_output", body["error"])
	require.Contains(t, body["message"], "] no array here [")

	// the raw output was still recorded
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test_plans", nil))
	require.Contains(t, w.Body.String(), "no array here")
}

func TestTestPlanHandler_Download404(t *testing.T) {
	g := setup(t, &fakeGen{})
	for _, path := range []string{"/download/test_plan.xlsx", "/download/..", "/download/..%2Fsecret"} {
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestTestPlanHandler_Validation(t *testing.T) {
	gen := &fakeGen{reply: planOutput}
	g := setup(t, gen)
	for _, body := range []string{`{}`, `{"content":""}`, `{"content":"   "}`, `nope`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate_test_plan", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		g.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	require.Zero(t, gen.calls)
}

func upload(t *testing.T, g *gin.Engine, field, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/generate_test_plan/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestTestPlanHandler_Upload(t *testing.T) {
	gen := &fakeGen{reply: planOutput}
	g := setup(t, gen)

	w := upload(t, g, "file", "requirements.md", []byte("# Login\nLock after 3 failures."))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"download_url":"http://localhost:8000/download/test_plan.xlsx"`)

	w = upload(t, g, "file", "requirements.exe", []byte("MZ"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(t, g, "document", "requirements.txt", []byte("x"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, 1, gen.calls)
}

func TestTestPlanHandler_UploadPDF(t *testing.T) {
	gen := &fakeGen{reply: planOutput}
	g := setup(t, gen)

	w := upload(t, g, "file", "requirements.pdf", pdftest.Build("Login must lock", "After three failures"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, gen.calls)

	// the stored record carries the text pulled out of the PDF
	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test_plans", nil))
	var list struct {
		TestPlans []testplan.Record `json:"test_plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.TestPlans, 1)
	require.Equal(t, "Login must lock\n\nAfter three failures", list.TestPlans[0].InputContent)

	w = upload(t, g, "file", "broken.pdf", []byte("%PDF-1.4 truncated"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 1, gen.calls)
}
