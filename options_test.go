package fontpictures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/fontpictures/internal/config"
	"github.com/gogpu/fontpictures/internal/fontmeta"
)

func TestRenderOptionsDefault(t *testing.T) {
	o := applyOptions(nil)
	if o.fallbackPath != "" {
		t.Errorf("fallbackPath = %q, want empty", o.fallbackPath)
	}
	if o.metadata != nil {
		t.Errorf("metadata = %+v, want nil", o.metadata)
	}
}

func TestWithFallbackPath(t *testing.T) {
	o := applyOptions([]RenderOption{WithFallbackPath("/tmp/x.png")})

	got, err := o.fallback()
	if err != nil {
		t.Fatalf("fallback() error = %v", err)
	}
	if got != "/tmp/x.png" {
		t.Errorf("fallback() = %q, want /tmp/x.png", got)
	}
}

func TestFallbackFromAppDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	t.Setenv(config.EnvFallback, "")

	got, err := applyOptions(nil).fallback()
	if err != nil {
		t.Fatalf("fallback() error = %v", err)
	}
	if want := filepath.Join(dir, config.DefaultFallback); got != want {
		t.Errorf("fallback() = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); !os.IsNotExist(err) {
		t.Errorf("fallback() created %s (stat error %v)", config.FileName, err)
	}
}

func TestWithMetadata(t *testing.T) {
	m := fontmeta.Metadata{UpperCaseOnly: true, Offset: 3}
	o := applyOptions([]RenderOption{WithMetadata(m)})

	if o.metadata == nil {
		t.Fatal("metadata not set")
	}
	if *o.metadata != m {
		t.Errorf("metadata = %+v, want %+v", *o.metadata, m)
	}
}

func TestOptionsLastWins(t *testing.T) {
	o := applyOptions([]RenderOption{
		WithFallbackPath("a.png"),
		WithFallbackPath("b.png"),
	})
	if o.fallbackPath != "b.png" {
		t.Errorf("fallbackPath = %q, want b.png", o.fallbackPath)
	}
}
