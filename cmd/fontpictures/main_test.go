package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/fontpictures/internal/config"
	"github.com/gogpu/fontpictures/internal/fontmeta"
	"github.com/gogpu/fontpictures/internal/image"
)

// setup points the application directory at a temp dir holding one font,
// "rb", with a red A, a blue B and a white question mark, all 2×2, offset 0.
func setup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvFontsDir, "")
	t.Setenv(config.EnvFallback, "")
	t.Setenv(config.EnvLogLevel, "")

	dir := filepath.Join(home, config.DefaultFontsDir, "rb")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, fontmeta.Save(dir, fontmeta.Metadata{Offset: 0}))

	tiles := map[string]color.NRGBA{
		"A":        {R: 255, A: 255},
		"B":        {B: 255, A: 255},
		"question": {R: 255, G: 255, B: 255, A: 255},
	}
	for name, c := range tiles {
		buf, err := image.NewImageBuf(2, 2)
		require.NoError(t, err)
		buf.Fill(c)
		require.NoError(t, buf.SavePNG(filepath.Join(dir, name+".png")))
	}
	return home
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Help(t *testing.T) {
	setup(t)

	code, stdout, _ := runCLI(t, "--help")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "--font")
	require.Contains(t, stdout, "TEXT")
}

func TestRun_Render(t *testing.T) {
	home := setup(t)

	code, stdout, stderr := runCLI(t, "-f", "rb", "-s", "3", "AB")
	require.Equal(t, 0, code, stderr)

	want := filepath.Join(home, "AB.png")
	require.Equal(t, want, strings.TrimSpace(stdout))

	img, err := image.LoadImage(want)
	require.NoError(t, err)
	require.Equal(t, 12, img.Width())
	require.Equal(t, 6, img.Height())

	cfg, err := config.LoadDir(home)
	require.NoError(t, err)
	require.Equal(t, "rb", cfg.MostRecentFont)
}

func TestRun_ScaleZeroMeansOne(t *testing.T) {
	home := setup(t)

	code, _, stderr := runCLI(t, "--font", "rb", "--scale", "0", "BA")
	require.Equal(t, 0, code, stderr)

	img, err := image.LoadImage(filepath.Join(home, "BA.png"))
	require.NoError(t, err)
	require.Equal(t, 4, img.Width())
}

func TestRun_UnsafeTextUsesFallback(t *testing.T) {
	home := setup(t)

	code, stdout, stderr := runCLI(t, "-f", "rb", "A?")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, filepath.Join(home, config.DefaultFallback), strings.TrimSpace(stdout))
	require.Contains(t, stderr, "level=WARN")
	require.NoFileExists(t, filepath.Join(home, "A?.png"))
}

func TestRun_Border(t *testing.T) {
	home := setup(t)

	code, _, stderr := runCLI(t, "-b", "-f", "rb", "A")
	require.Equal(t, 0, code)
	require.Contains(t, stderr, "border is not implemented")
	require.FileExists(t, filepath.Join(home, "A.png"))
}

func TestRun_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no text", []string{"-f", "rb"}, "empty text"},
		{"output path", []string{"-f", "rb", "-o", "x.png", "AB"}, "not yet handled"},
		{"wrap", []string{"-f", "rb", "-w", "40", "AB"}, "not yet handled"},
		{"negative scale", []string{"-f", "rb", "--scale=-2", "AB"}, "scale must be at least 1"},
		{"no font", []string{"AB"}, "available fonts"},
		{"unknown font", []string{"-f", "nope", "AB"}, "invalid font"},
		{"missing glyph", []string{"-f", "rb", "ABC"}, "missing glyph"},
		{"bad flag", []string{"--colour", "AB"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setup(t)

			code, _, stderr := runCLI(t, tt.args...)
			require.Equal(t, 1, code)
			require.Contains(t, stderr, tt.wantErr)

			matches, err := filepath.Glob(filepath.Join(home, "*.png"))
			require.NoError(t, err)
			require.Empty(t, matches, "nothing should be written")
		})
	}
}

func TestRun_List(t *testing.T) {
	home := setup(t)
	other := filepath.Join(home, config.DefaultFontsDir, "empty")
	require.NoError(t, os.MkdirAll(other, 0o755))
	require.NoError(t, fontmeta.Save(other, fontmeta.Default()))
	require.NoError(t, os.MkdirAll(filepath.Join(home, config.DefaultFontsDir, "notafont"), 0o755))

	code, stdout, _ := runCLI(t, "-l")
	require.Equal(t, 0, code)
	require.ElementsMatch(t, []string{"empty", "rb"}, strings.Fields(stdout))

	code, _, stderr := runCLI(t, "-f", "rb", "A")
	require.Equal(t, 0, code, stderr)

	code, stdout, _ = runCLI(t, "-l", "-v")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "rb\t3/95\t(most recent)")
	require.Contains(t, stdout, "empty\t0/95")
}

func TestRun_ListEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	code, stdout, _ := runCLI(t, "--list")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "no fonts")
	require.DirExists(t, filepath.Join(home, config.DefaultFontsDir))
}

func TestRun_Generate(t *testing.T) {
	home := setup(t)

	code, stdout, stderr := runCLI(t, "-g", "basic")
	require.Equal(t, 0, code, stderr)
	dir := filepath.Join(home, config.DefaultFontsDir, "basic")
	require.Equal(t, dir, strings.TrimSpace(stdout))
	require.FileExists(t, filepath.Join(dir, fontmeta.FileName))
	require.FileExists(t, filepath.Join(dir, "space.png"))

	code, _, stderr = runCLI(t, "-f", "basic", "Hi there")
	require.Equal(t, 0, code, stderr)

	img, err := image.LoadImage(filepath.Join(home, config.DefaultFallback))
	require.NoError(t, err)
	require.Equal(t, 8*7, img.Width())
	require.Equal(t, 13, img.Height())

	code, _, stderr = runCLI(t, "-g", "basic")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "already exists")
}

func TestRun_GenerateBadName(t *testing.T) {
	setup(t)

	code, _, stderr := runCLI(t, "-g", "../escape")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "invalid font")
}
