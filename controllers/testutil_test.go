package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database and migrates every model.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test DB: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.HelpCenter{}, &models.Admin{}, &models.PoliceReport{}, &models.EvidenceFile{}); err != nil {
		t.Fatalf("model migration failed: %v", err)
	}
	return db
}

// envelope mirrors the response body shape for assertions.
type envelope struct {
	Message     string                 `json:"Message"`
	Errors      []string               `json:"Errors"`
	Data        json.RawMessage        `json:"Data"`
	UserDetails map[string]interface{} `json:"UserDetails"`
}

func performRequest(t *testing.T, r http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if body != nil && headers["Content-Type"] == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performJSON(t *testing.T, r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("could not marshal payload: %v", err)
	}
	return performRequest(t, r, method, path, bytes.NewReader(body), nil)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("could not decode response %q: %v", w.Body.String(), err)
	}
	return env
}

// multipartBody builds a multipart form with the given fields and evidence
// file names; file contents are a short placeholder payload.
func multipartBody(t *testing.T, fields map[string]string, fileNames []string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("could not write field %s: %v", k, err)
		}
	}
	for _, name := range fileNames {
		fw, err := mw.CreateFormFile("Evidence", name)
		if err != nil {
			t.Fatalf("could not create form file %s: %v", name, err)
		}
		if _, err := fw.Write([]byte("evidence-bytes")); err != nil {
			t.Fatalf("could not write file %s: %v", name, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("could not close multipart writer: %v", err)
	}

	return buf, mw.FormDataContentType()
}

func init() {
	gin.SetMode(gin.TestMode)
}
