package extract

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"lapchart-scraper/internal/components/telemetry"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const fencedReply = "```csv\nPOS,1\nGRID,44\n```"

// geminiServer fakes the resumable files upload, generateContent and file
// delete endpoints of the Gemini API.
type geminiServer struct {
	*httptest.Server

	mu            sync.Mutex
	uploaded      []byte
	generateCalls int
	generateBody  map[string]any
	deleted       []string
	generateCode  int
}

func newGeminiServer(t *testing.T) *geminiServer {
	s := &geminiServer{generateCode: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

func (s *geminiServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/upload/v1beta/files":
		w.Header().Set("X-Goog-Upload-Url", s.URL+"/upload-session")
		w.Write([]byte("{}"))
	case r.Method == http.MethodPost && r.URL.Path == "/upload-session":
		s.uploaded, _ = io.ReadAll(r.Body)
		w.Header().Set("X-Goog-Upload-Status", "final")
		w.Write([]byte(`{"file": {
			"name": "files/chart1",
			"uri": "` + s.URL + `/v1beta/files/chart1",
			"mimeType": "application/pdf"
		}}`))
	case r.Method == http.MethodPost && r.URL.Path == "/v1beta/models/gemini-test:generateContent":
		s.generateCalls++
		json.NewDecoder(r.Body).Decode(&s.generateBody)
		if s.generateCode != http.StatusOK {
			w.WriteHeader(s.generateCode)
			w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
			return
		}
		reply, _ := json.Marshal(fencedReply)
		w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": ` + string(reply) + `}]}}]}`))
	case r.Method == http.MethodDelete && r.URL.Path == "/v1beta/files/chart1":
		s.deleted = append(s.deleted, "chart1")
		w.Write([]byte("{}"))
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": 404, "message": "not found", "status": "NOT_FOUND"}}`))
	}
}

func newTestGemini(t *testing.T, srv *geminiServer) *GeminiModel {
	model, err := NewGeminiModel(context.Background(), GeminiOptions{
		APIKey:  "test-key",
		Model:   "gemini-test",
		BaseURL: srv.URL,
	}, telemetry.SlogAPI{})
	require.NoError(t, err)
	return model
}

func TestGeminiGenerate(t *testing.T) {
	srv := newGeminiServer(t)
	model := newTestGemini(t, srv)
	pdf := writePDF(t, t.TempDir())

	reply, err := model.Generate(context.Background(), pdf, LapChartPrompt)
	require.NoError(t, err)
	require.Equal(t, fencedReply, reply)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	require.Equal(t, "%PDF-1.4", string(srv.uploaded))
	require.Equal(t, 1, srv.generateCalls)
	require.Equal(t, []string{"chart1"}, srv.deleted)

	contents := srv.generateBody["contents"].([]any)
	require.Len(t, contents, 1)
	content := contents[0].(map[string]any)
	require.Equal(t, "user", content["role"])
	parts := content["parts"].([]any)
	require.Len(t, parts, 2)
	require.Equal(t, map[string]any{
		"fileUri":  srv.URL + "/v1beta/files/chart1",
		"mimeType": "application/pdf",
	}, parts[0].(map[string]any)["fileData"])
	require.Equal(t, LapChartPrompt, parts[1].(map[string]any)["text"])

	config := srv.generateBody["generationConfig"].(map[string]any)
	require.Equal(t, "text/plain", config["responseMimeType"])
}

func TestGeminiGenerateServiceError(t *testing.T) {
	srv := newGeminiServer(t)
	srv.generateCode = http.StatusTooManyRequests
	model := newTestGemini(t, srv)
	pdf := writePDF(t, t.TempDir())

	_, err := model.Generate(context.Background(), pdf, LapChartPrompt)
	var apiErr genai.APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	require.Equal(t, 429, apiErr.Code)
	require.NotErrorIs(t, err, ErrPDFNotFound)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	require.Equal(t, []string{"chart1"}, srv.deleted)
}
