package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/MalithGihan/chart-service/internal/logging"
	"github.com/MalithGihan/chart-service/internal/store"
)

var errNotFound = errors.New("file not found")

// Files serves stored charts by plain file name.
type Files struct {
	fs  *store.FS
	log *logging.Logger
}

func NewFiles(fs *store.FS, log *logging.Logger) *Files {
	return &Files{fs: fs, log: log}
}

// Mount exposes GET <prefix>/{filename} on r.
func (f *Files) Mount(r chi.Router, prefix string) {
	r.Get(prefix+"/{filename}", f.serve)
}

func (f *Files) serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	p, err := f.fs.Path(name)
	if err != nil {
		writeError(w, http.StatusNotFound, errNotFound)
		return
	}
	fi, err := os.Stat(p)
	if err != nil || !fi.Mode().IsRegular() {
		f.log.Debugf("file %q not served: %v", name, err)
		writeError(w, http.StatusNotFound, errNotFound)
		return
	}
	http.ServeFile(w, r, p)
}
