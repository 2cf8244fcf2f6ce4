// Package deliver hands a rendered PNG back to the caller in one of three shapes.
package deliver

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"path"

	"github.com/MalithGihan/chart-service/pkg/types"
)

type Mode int

const (
	Binary  Mode = iota // raw image/png body
	Encoded             // base64 text, no envelope
	Stored              // file in the output directory, JSON URL
)

func (m Mode) String() string {
	switch m {
	case Binary:
		return "binary"
	case Encoded:
		return "base64"
	case Stored:
		return "stored"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Saver persists image bytes and returns the generated file name.
type Saver interface {
	Save(data []byte) (string, error)
}

type Adapter struct {
	saver     Saver
	urlPrefix string
}

// New returns an Adapter whose stored files are reachable under urlPrefix (e.g. "/charts").
func New(saver Saver, urlPrefix string) *Adapter {
	return &Adapter{saver: saver, urlPrefix: urlPrefix}
}

// Write sends img to w according to m. Nothing has been written to w when it
// returns an error, so the caller may still send an error response.
func (a *Adapter) Write(w http.ResponseWriter, img []byte, m Mode) error {
	switch m {
	case Binary:
		w.Header().Set("Content-Type", "image/png")
		_, err := w.Write(img)
		return err
	case Encoded:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := w.Write([]byte(base64.StdEncoding.EncodeToString(img)))
		return err
	case Stored:
		name, err := a.saver.Save(img)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/json")
		return json.NewEncoder(w).Encode(types.ChartURL{ChartURL: path.Join(a.urlPrefix, name)})
	default:
		return fmt.Errorf("deliver: unknown mode %v", m)
	}
}
