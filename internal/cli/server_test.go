package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchy/pkg/cache"
	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/pipeline"
	"github.com/matzehuels/sketchy/pkg/render/sink"
	"github.com/matzehuels/sketchy/pkg/scene"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(fc, cache.NewScopedKeyer(nil, "test:"), logger)
	t.Cleanup(func() { runner.Close() })

	srv := httptest.NewServer(newServer(runner, logger))
	t.Cleanup(srv.Close)
	return srv
}

func exampleBody(t *testing.T, format string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := scene.Example().Encode(&buf, format); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func post(t *testing.T, url, contentType string, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(url, contentType, bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServerHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("healthz = %d %q", resp.StatusCode, body)
	}
	if resp.Header.Get(headerReqID) == "" {
		t.Error("missing request id")
	}
}

func TestServerRenderFormats(t *testing.T) {
	srv := newTestServer(t)
	body := exampleBody(t, scene.FormatTOML)

	for _, format := range []string{"svg", "png", "json"} {
		t.Run(format, func(t *testing.T) {
			resp := post(t, srv.URL+"/v1/render?format="+format, "application/toml", body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if got := resp.Header.Get("Content-Type"); got != sink.ContentType(format) {
				t.Errorf("Content-Type = %q, want %q", got, sink.ContentType(format))
			}
			if resp.Header.Get(headerScene) == "" {
				t.Error("missing scene hash")
			}
			data, _ := io.ReadAll(resp.Body)
			if len(data) == 0 {
				t.Error("empty artifact")
			}
		})
	}
}

func TestServerRenderCache(t *testing.T) {
	srv := newTestServer(t)
	body := exampleBody(t, scene.FormatJSON)
	url := srv.URL + "/v1/render?format=json"

	first := post(t, url, "application/json", body)
	a, _ := io.ReadAll(first.Body)
	second := post(t, url, "application/json", body)
	b, _ := io.ReadAll(second.Body)

	if got := first.Header.Get(headerCache); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}
	if got := second.Header.Get(headerCache); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if !bytes.Equal(a, b) {
		t.Error("cached artifact differs from the rendered one")
	}
}

func TestServerRenderSniffsBody(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/v1/render", "", exampleBody(t, scene.FormatJSON))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "image/svg+xml" {
		t.Errorf("default format Content-Type = %q", got)
	}
}

func TestServerRenderErrors(t *testing.T) {
	srv := newTestServer(t)
	valid := exampleBody(t, scene.FormatTOML)

	tests := []struct {
		name        string
		query       string
		contentType string
		body        []byte
		status      int
		code        errors.Code
	}{
		{"bad format", "?format=gif", "application/toml", valid, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"bad scale", "?format=png&scale=big", "application/toml", valid, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad size", "", "application/toml", []byte("width = -1\nheight = 10\n"), http.StatusBadRequest, errors.ErrCodeInvalidScene},
		{"unknown kind", "", "application/toml", []byte("width = 10\nheight = 10\n[[shape]]\nkind = \"star\"\n"), http.StatusBadRequest, errors.ErrCodeInvalidShape},
		{"content type", "", "image/png", valid, http.StatusUnsupportedMediaType, errors.ErrCodeUnsupported},
		{"body too large", "", "application/toml", bytes.Repeat([]byte("#"), maxSceneBytes+1), http.StatusRequestEntityTooLarge, errors.ErrCodeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/v1/render"+tt.query, tt.contentType, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var eb errorBody
			if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if eb.Code != tt.code || eb.Error == "" {
				t.Errorf("error body = %+v, want code %s", eb, tt.code)
			}
		})
	}
}

func TestServerRequestID(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set(headerReqID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(headerReqID); got != "abc-123" {
		t.Errorf("X-Request-Id = %q, want abc-123", got)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidColor, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeUnsupported, "x"), http.StatusUnsupportedMediaType},
		{errors.New(errors.ErrCodeFileNotFound, "x"), http.StatusNotFound},
		{errors.New(errors.ErrCodeTooLarge, "x"), http.StatusRequestEntityTooLarge},
		{errors.New(errors.ErrCodeInternal, "x"), http.StatusInternalServerError},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestBodyFormat(t *testing.T) {
	tests := []struct {
		ct      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"application/toml", scene.FormatTOML, false},
		{"application/json; charset=utf-8", scene.FormatJSON, false},
		{"text/plain", "", false},
		{"image/png", "", true},
		{";;", "", true},
	}
	for _, tt := range tests {
		got, err := bodyFormat(tt.ct)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("bodyFormat(%q) = %q, %v", tt.ct, got, err)
		}
	}
}
