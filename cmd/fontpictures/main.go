// Command fontpictures renders text into a PNG using a tile font.
//
// Usage:
//
//	fontpictures -f pixel -s 4 HELLO     # writes HELLO.png next to the executable
//	fontpictures -l -v                   # lists fonts with their glyph coverage
//	fontpictures -g mono --ttf Go-Mono.ttf --size 12
//
// Fonts live in the Fonts directory next to the executable, or wherever
// FONTPICTURES_HOME and FONTPICTURES_FONTS_DIR point.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/gogpu/fontpictures"
	"github.com/gogpu/fontpictures/internal/config"
	"github.com/gogpu/fontpictures/internal/fontdir"
	"github.com/gogpu/fontpictures/internal/fontgen"
)

type options struct {
	Verbose  bool           `short:"v" long:"verbose"  description:"debug logging; with --list, show glyph coverage"`
	Border   bool           `short:"b" long:"border"   description:"draw a border (no effect yet)"`
	Font     string         `short:"f" long:"font"     description:"font to render with" value-name:"NAME"`
	Scale    int            `short:"s" long:"scale"    description:"integer upscaling factor, 0 means 1" default:"1" value-name:"N"`
	List     bool           `short:"l" long:"list"     description:"list fonts and exit"`
	Output   string         `short:"o" long:"output"   description:"output file (not yet handled)" value-name:"PATH"`
	Wrap     int            `short:"w" long:"wrap"     description:"wrap width in pixels (not yet handled)" value-name:"PX"`
	Generate string         `short:"g" long:"generate" description:"generate a tile font called NAME and exit" value-name:"NAME"`
	TTF      flags.Filename `long:"ttf"                description:"font file for --generate instead of the built-in 7x13 face" value-name:"FILE"`
	Size     float64        `long:"size"               description:"point size for --ttf" default:"16" value-name:"PT"`

	Args struct {
		Text string `positional-arg-name:"TEXT"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "fontpictures"
	parser.Usage = "[OPTIONS] TEXT"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	fontpictures.SetLogger(log)
	defer fontpictures.SetLogger(nil)

	if len(rest) > 0 {
		log.Warn("ignoring extra arguments", "args", strings.Join(rest, " "))
	}

	root := fontdir.NewRoot(cfg.FontsDir)
	switch {
	case opts.List:
		err = listFonts(stdout, root, cfg, opts.Verbose)
	case opts.Generate != "":
		err = generate(stdout, log, root, opts)
	default:
		err = render(stdout, stderr, log, root, cfg, opts)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func listFonts(w io.Writer, root *fontdir.Root, cfg *config.Config, verbose bool) error {
	names, err := root.Names()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "no fonts in %s\n", root.Path())
		return nil
	}

	total := int(fontdir.LastPrintable - fontdir.FirstPrintable + 1)
	for _, name := range names {
		if !verbose {
			fmt.Fprintln(w, name)
			continue
		}

		font, err := root.Open(name)
		if err != nil {
			return err
		}
		idx, err := font.Index()
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s\t%d/%d", name, idx.Coverage(fontpictures.TileName).Count(), total)
		if name == cfg.MostRecentFont {
			line += "\t(most recent)"
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func generate(w io.Writer, log *slog.Logger, root *fontdir.Root, opts options) error {
	dir, err := root.Dir(opts.Generate)
	if err != nil {
		return err
	}

	src := fontgen.BasicSource()
	if opts.TTF != "" {
		src, err = fontgen.LoadTTF(string(opts.TTF), opts.Size)
		if err != nil {
			return err
		}
	}
	defer func() {
		_ = src.Close()
	}()

	gen := fontgen.DefaultOptions()
	gen.Name = fontpictures.TileName
	report, err := fontgen.Generate(dir, src, gen)
	if err != nil {
		return err
	}

	log.Info("generated font",
		"name", opts.Generate,
		"source", src.Name,
		"tiles", report.Written,
		"skipped", len(report.Skipped),
		"cell", fmt.Sprintf("%dx%d", report.CellWidth, report.CellHeight),
	)
	fmt.Fprintln(w, dir)
	return nil
}

func render(stdout, stderr io.Writer, log *slog.Logger, root *fontdir.Root, cfg *config.Config, opts options) error {
	text := opts.Args.Text
	if text == "" {
		return fmt.Errorf("%w: pass the text to render as an argument", fontpictures.ErrEmptyText)
	}
	if opts.Output != "" {
		return fmt.Errorf("%w: custom output path %q", fontpictures.ErrNotImplemented, opts.Output)
	}
	if opts.Wrap != 0 {
		return fmt.Errorf("%w: word wrap at %d pixels", fontpictures.ErrNotImplemented, opts.Wrap)
	}
	if opts.Border {
		log.Warn("border is not implemented, ignoring")
	}

	scale := opts.Scale
	switch {
	case scale < 0:
		return fmt.Errorf("%w: got %d", fontpictures.ErrInvalidScale, scale)
	case scale == 0:
		scale = 1
	}

	if opts.Font == "" {
		printAvailable(stderr, root, cfg)
		return fmt.Errorf("%w: select one with --font", fontpictures.ErrNoFont)
	}
	font, err := root.Open(opts.Font)
	if err != nil {
		printAvailable(stderr, root, cfg)
		return err
	}

	req := fontpictures.RenderRequest{
		Text:        text,
		FontDir:     font.Dir,
		Scale:       scale,
		Destination: fontpictures.DefaultDestination(cfg.AppDir, text),
	}
	path, err := fontpictures.Render(req, fontpictures.WithFallbackPath(cfg.FallbackPath))
	if err != nil {
		return err
	}

	if err := cfg.SetMostRecentFont(font.Name); err != nil {
		log.Warn("could not remember font", "font", font.Name, "err", err)
	}
	fmt.Fprintln(stdout, path)
	return nil
}

// printAvailable lists the fonts a user can pass to --font.
func printAvailable(w io.Writer, root *fontdir.Root, cfg *config.Config) {
	names, err := root.Names()
	if err != nil || len(names) == 0 {
		fmt.Fprintf(w, "no fonts in %s (create one with --generate NAME)\n", root.Path())
		return
	}
	fmt.Fprintln(w, "available fonts:")
	for _, name := range names {
		if name == cfg.MostRecentFont {
			fmt.Fprintf(w, "  %s (most recent)\n", name)
			continue
		}
		fmt.Fprintf(w, "  %s\n", name)
	}
}
