package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MalithGihan/chart-service/internal/deliver"
	"github.com/MalithGihan/chart-service/internal/logging"
	"github.com/MalithGihan/chart-service/internal/store"
	"github.com/MalithGihan/chart-service/internal/validate"
	"github.com/MalithGihan/chart-service/pkg/types"
)

// Renderer turns validated requests into PNG bytes.
type Renderer interface {
	Chart(req types.ChartRequest) ([]byte, error)
	Diagram(req types.DiagramRequest) ([]byte, error)
}

type Server struct {
	render  Renderer
	deliver *deliver.Adapter
	files   *Files
	prefix  string
	log     *logging.Logger
}

// New wires a Server. Stored charts go to fs and are linked and served under prefix.
func New(render Renderer, fs *store.FS, prefix string, log *logging.Logger) *Server {
	return &Server{
		render:  render,
		deliver: deliver.New(fs, prefix),
		files:   NewFiles(fs, log),
		prefix:  prefix,
		log:     log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	Middleware(r, s.log)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"chart-service"}`))
	})

	r.Post("/chart", handle(s, validate.Chart, s.render.Chart, deliver.Binary))
	r.Post("/chart/base64", handle(s, validate.Chart, s.render.Chart, deliver.Encoded))
	r.Post("/chart/save", handle(s, validate.Chart, s.render.Chart, deliver.Stored))

	r.Post("/ikigai", handle(s, validate.Diagram, s.render.Diagram, deliver.Binary))
	r.Post("/ikigai/base64", handle(s, validate.Diagram, s.render.Diagram, deliver.Encoded))
	r.Post("/ikigai/save", handle(s, validate.Diagram, s.render.Diagram, deliver.Stored))

	s.files.Mount(r, s.prefix)
	return r
}

// Middleware installs the request id, access log and panic recovery used by both servers.
func Middleware(r chi.Router, log *logging.Logger) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log, NoColor: true}))
	r.Use(middleware.Recoverer)
}

// handle builds the read → validate → render → deliver pipeline shared by every render route.
func handle[T any](s *Server, decode func([]byte) (T, error), draw func(T) ([]byte, error), mode deliver.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.fail(w, r, &validate.InputError{Msg: "read body: " + err.Error()})
			return
		}
		req, err := decode(body)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		img, err := draw(req)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		if err := s.deliver.Write(ww, img, mode); err != nil {
			if ww.Status() != 0 {
				// response already started; the client sees a truncated body
				s.log.Errorf("%s %s: deliver %s: %v", r.Method, r.URL.Path, mode, err)
				return
			}
			s.fail(w, r, err)
			return
		}
		s.log.Debugf("%s %s: delivered %d bytes as %s", r.Method, r.URL.Path, len(img), mode)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ie *validate.InputError
	if errors.As(err, &ie) {
		s.log.Debugf("%s %s: rejected: %v", r.Method, r.URL.Path, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.log.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, err)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(types.ErrorBody{Error: err.Error()})
}
