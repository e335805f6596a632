package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/observability"
	"github.com/matzehuels/sketchy/pkg/pipeline"
	"github.com/matzehuels/sketchy/pkg/render/sink"
	"github.com/matzehuels/sketchy/pkg/scene"
)

const (
	maxSceneBytes  = 1 << 20
	requestTimeout = 30 * time.Second
	headerCache    = "X-Cache"
	headerScene    = "X-Scene-Hash"
	headerReqID    = "X-Request-Id"
)

// server exposes a pipeline runner over HTTP.
type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	s := &server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.render)
	})
	return r
}

// requestID keeps a client supplied X-Request-Id or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerReqID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(headerReqID, id)
		}
		w.Header().Set(headerReqID, id)
		next.ServeHTTP(w, r)
	})
}

func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		d := time.Since(start)

		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), d)
		s.logger.Info("request",
			"id", r.Header.Get(headerReqID),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", d.Round(time.Microsecond))
	})
}

func (s *server) render(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts := pipeline.Options{HideIndicators: q.Get("indicators") == "false"}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.fail(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "scale"))
			return
		}
		opts.Scale = scale
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSceneBytes))
	if err != nil {
		code := errors.ErrCodeInvalidInput
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			code = errors.ErrCodeTooLarge
		}
		s.fail(w, errors.Wrap(code, err, "read body"))
		return
	}
	sceneFormat, err := bodyFormat(r.Header.Get("Content-Type"))
	if err != nil {
		s.fail(w, err)
		return
	}
	sc, err := scene.Decode(body, sceneFormat)
	if err != nil {
		s.fail(w, err)
		return
	}

	data, hit, err := s.runner.RenderFormat(r.Context(), sc, format, opts)
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", sink.ContentType(format))
	w.Header().Set(headerScene, sc.Hash())
	w.Header().Set(headerCache, cacheStatus(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// bodyFormat maps a request Content-Type to a scene format. An empty or
// generic type lets the decoder guess.
func bodyFormat(contentType string) (string, error) {
	if contentType == "" {
		return "", nil
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "content type")
	}
	switch mt {
	case "application/toml", "text/toml":
		return scene.FormatTOML, nil
	case "application/json":
		return scene.FormatJSON, nil
	case "text/plain", "application/octet-stream":
		return "", nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported content type %q", mt)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errors.ErrCodeTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
