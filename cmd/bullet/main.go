// Command bullet is a terminal bullet-outline editor: a persisted plain-text
// list of indented bullets, edited line by line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/bullet/internal/config"
	"github.com/xonecas/bullet/internal/outline"
	"github.com/xonecas/bullet/internal/storage"
	"github.com/xonecas/bullet/internal/store"
	"github.com/xonecas/bullet/internal/tui"
)

const revisionsToKeep = 20

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/bullet/config.toml)")
	indentWidth := flag.Int("i", 0, "indentation width (overrides config)")
	autosave := flag.String("autosave", "", "autosave mode: eager or deferred (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: bullet [flags] [filename]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Bullet is a simple note taking program.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bullet: %v\n", err)
		os.Exit(1)
	}
	if *indentWidth != 0 {
		cfg.Editor.IndentWidth = *indentWidth
	}
	if *autosave != "" {
		cfg.Editor.Autosave = *autosave
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "bullet: %v\n", err)
		os.Exit(1)
	}

	docPath := cfg.Document.PathOrDefault()
	if flag.NArg() > 0 {
		docPath = flag.Arg(0)
	}

	// Log to a file; stdout belongs to the TUI.
	dataDir, err := config.EnsureDataDir()
	if err == nil {
		if f, ferr := os.OpenFile(filepath.Join(dataDir, "bullet.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); ferr == nil {
			log.Logger = zerolog.New(f).With().Timestamp().Logger()
			defer f.Close()
		}
	}

	var journal *store.Journal
	if dataDir != "" {
		journal, err = store.Open(filepath.Join(dataDir, "revisions.db"), revisionsToKeep)
		if err != nil {
			log.Warn().Err(err).Msg("revision journal unavailable")
			journal = nil
		}
	}
	defer journal.Close()

	text, created, err := storage.Load(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bullet: %v\n", err)
		os.Exit(1)
	}
	if created {
		log.Info().Str("path", docPath).Msg("starting with a fresh document")
	}

	doc, err := outline.Load(text, cfg.Editor.IndentWidthOrDefault())
	if err != nil {
		var verr *outline.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "bullet: %s: %v\n", docPath, verr)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "bullet: %v\n", err)
		os.Exit(1)
	}

	m := tui.New(doc, tui.Options{
		DocPath:   docPath,
		Autosave:  cfg.Editor.AutosaveOrDefault(),
		SavedText: text,
		Journal:   journal,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "bullet: %v\n", err)
		os.Exit(1)
	}
}
