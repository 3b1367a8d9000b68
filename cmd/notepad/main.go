// Command notepad is a minimal terminal text editor.
//
//	notepad [flags] [file]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/notepad"
	"github.com/iw2rmb/notepad/app"
	"github.com/iw2rmb/notepad/document"
	"github.com/iw2rmb/notepad/internal/clip"
)

type options struct {
	path         string
	logPath      string
	noWrap       bool
	font         document.Font
	trackedDirty bool
	noWatch      bool
	noColor      bool
	version      bool
}

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opt options
	fs := flag.NewFlagSet("notepad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: notepad [flags] [file]\n\n")
		fs.PrintDefaults()
	}

	fontLabel := fs.String("font", document.DefaultFont.Label(), `initial font, e.g. "Arial 12"`)
	fs.StringVar(&opt.logPath, "log", "", "write structured logs to `file`")
	fs.BoolVar(&opt.noWrap, "nowrap", false, "start with word wrap off")
	fs.BoolVar(&opt.trackedDirty, "tracked-dirty", false, "prompt to save only when the text differs from the file")
	fs.BoolVar(&opt.noWatch, "nowatch", false, "do not watch the open file for external changes")
	fs.BoolVar(&opt.noColor, "nocolor", false, "disable colors")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return opt, errUsage
	}
	opt.path = fs.Arg(0)

	f, err := document.ParseFont(*fontLabel)
	if err != nil || f.IsUnchanged() {
		fmt.Fprintf(stderr, "notepad: unknown font %q\n", *fontLabel)
		return opt, errUsage
	}
	opt.font = f
	return opt, nil
}

func (opt options) config(log *slog.Logger) app.Config {
	cfg := app.DefaultConfig()
	cfg.InitialPath = opt.path
	cfg.NoWordWrap = opt.noWrap
	cfg.Font = opt.font
	cfg.WatchFiles = !opt.noWatch
	cfg.Logger = log
	cfg.Clipboard = clip.New(log)
	if opt.trackedDirty {
		cfg.DirtyPolicy = document.DirtyTracked
	}
	return cfg
}

// newLogger returns a text logger writing to path, or a discarding one when
// path is empty. The terminal belongs to the UI, so logs never go to stderr.
func newLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With(slog.String("version", notepad.VersionTag())), f, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opt, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if opt.version {
		fmt.Fprintln(stdout, "notepad", notepad.VersionTag())
		return 0
	}

	log, closer, err := newLogger(opt.logPath)
	if err != nil {
		fmt.Fprintf(stderr, "notepad: %v\n", err)
		return 1
	}
	defer closer.Close()

	if opt.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m := app.New(opt.config(log))
	defer m.Close()
	log.Info("start", slog.String("path", opt.path))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", slog.Any("err", err))
		fmt.Fprintf(stderr, "notepad: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
