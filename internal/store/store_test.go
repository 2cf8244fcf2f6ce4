package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "charts")
	if _, err := New(root); err != nil {
		t.Fatalf("New: %v", err)
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		t.Fatalf("root not created: %v", err)
	}
}

func TestSave(t *testing.T) {
	st, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("\x89PNG fake")
	a, err := st.Save(data)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := st.Save(data)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Fatalf("identical input reused name %q", a)
	}
	for _, name := range []string{a, b} {
		if !strings.HasSuffix(name, ".png") || len(name) != len("xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.png") {
			t.Errorf("unexpected name %q", name)
		}
		p, err := st.Path(name)
		if err != nil {
			t.Fatalf("Path(%q): %v", name, err)
		}
		got, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("file %s content mismatch", name)
		}
	}
}

func TestSaveFailsWhenRootGone(t *testing.T) {
	root := filepath.Join(t.TempDir(), "charts")
	st, err := New(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(root); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save([]byte("x")); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestPathRejectsEscapes(t *testing.T) {
	st := &FS{Root: "/srv/charts"}
	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b.png", `a\b.png`, "/abs.png"} {
		if _, err := st.Path(name); !errors.Is(err, ErrBadName) {
			t.Errorf("Path(%q) = %v, want ErrBadName", name, err)
		}
	}
	p, err := st.Path("ok.png")
	if err != nil || p != filepath.Join("/srv/charts", "ok.png") {
		t.Errorf("Path(ok.png) = %q, %v", p, err)
	}
}
