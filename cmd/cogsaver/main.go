// Package main provides the cogsaver application: a terminal save manager
// for Choice of Games titles. It mirrors a single live save file into a
// quicksave slot and a named archive, either interactively (TUI) or through
// one-shot command flags for scripting.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	appconfig "github.com/amerikrainian/CoG-saver/pkg/config"
	"github.com/amerikrainian/CoG-saver/pkg/logging"
	"github.com/amerikrainian/CoG-saver/pkg/saves"
	"github.com/amerikrainian/CoG-saver/pkg/tui"
)

const version = "1.0.0"

// Config holds the application configuration. Environment variables provide
// defaults; flags override them.
type Config struct {
	ConfigDir string `env:"COGSAVER_CONFIG_DIR"`
	SaveFile  string `env:"COGSAVER_SAVE_FILE"`

	ShowVersion bool
	Quicksave   bool
	Quickload   bool
	SaveName    string
	LoadPath    string
	List        bool
}

func main() {
	config, err := parseFlags()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if config.ShowVersion {
		fmt.Printf("cogsaver v%s\n", version)
		return
	}

	if err := run(config); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// parseFlags reads environment defaults and command line flags.
func parseFlags() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flag.StringVar(&config.ConfigDir, "config-dir", config.ConfigDir, "Directory for preferences and settings (default: ~/.cogsaver)")
	flag.StringVar(&config.SaveFile, "save-file", config.SaveFile, "Live save file to select instead of the remembered one")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")
	flag.BoolVar(&config.Quicksave, "quicksave", false, "Copy the live save to the quicksave slot and exit")
	flag.BoolVar(&config.Quickload, "quickload", false, "Copy the quicksave slot over the live save and exit")
	flag.StringVar(&config.SaveName, "save", "", "Archive the live save under this name and exit")
	flag.StringVar(&config.LoadPath, "load", "", "Copy this archive save over the live save and exit")
	flag.BoolVar(&config.List, "list", false, "List archive saves and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cogsaver - a save manager for Choice of Games titles\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cogsaver [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  COGSAVER_CONFIG_DIR  Directory for preferences and settings\n")
		fmt.Fprintf(os.Stderr, "  COGSAVER_SAVE_FILE   Live save file to select\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cogsaver                                   # interactive TUI\n")
		fmt.Fprintf(os.Stderr, "  cogsaver -quicksave\n")
		fmt.Fprintf(os.Stderr, "  cogsaver -save \"before the duel\"\n")
		fmt.Fprintf(os.Stderr, "  cogsaver -save-file ~/Steam/.../storePSgamePSstate -list\n")
	}

	flag.Parse()

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// oneShot reports whether any non-interactive operation was requested.
func (c *Config) oneShot() bool {
	return c.Quicksave || c.Quickload || c.SaveName != "" || c.LoadPath != "" || c.List
}

// validate checks that the configuration is coherent.
func (c *Config) validate() error {
	requested := 0
	for _, on := range []bool{c.Quicksave, c.Quickload, c.SaveName != "", c.LoadPath != "", c.List} {
		if on {
			requested++
		}
	}
	if requested > 1 {
		return fmt.Errorf("choose at most one of -quicksave, -quickload, -save, -load, -list")
	}
	return nil
}

func run(config *Config) error {
	prefPath := ""
	if config.ConfigDir != "" {
		prefPath = filepath.Join(config.ConfigDir, "config.json")
	}
	store, err := appconfig.NewFileStore(prefPath)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}

	settings, err := appconfig.LoadSettings(appconfig.SettingsPath(config.ConfigDir))
	if err != nil {
		// Defaults still apply; don't block startup on a settings typo
		log.Printf("Warning: %v", err)
	}

	logger, logErr := logging.NewLogger("main")
	if logErr != nil {
		log.Printf("Warning: debug logging degraded: %v", logErr)
	}
	defer logger.Close()
	logger.Infof("cogsaver v%s starting, preferences at %s", version, store.Path())

	session := saves.NewSession(store, saves.WithLogger(logger))

	if config.oneShot() {
		return runOneShot(session, config)
	}
	return tui.Run(session, settings, logger, config.SaveFile)
}

// runOneShot executes a single operation with status messages on stdout.
func runOneShot(session *saves.Session, config *Config) error {
	session.SetNotifier(saves.NotifierFunc(func(msg string) {
		fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), msg)
	}))

	if config.SaveFile != "" {
		if err := session.SelectLiveSave(config.SaveFile); err != nil {
			return err
		}
	} else {
		session.Restore()
	}

	switch {
	case config.Quicksave:
		return session.QuickSave()

	case config.Quickload:
		err := session.QuickLoad()
		if errors.Is(err, saves.ErrNoQuickSave) {
			return nil // benign no-op, already narrated
		}
		return err

	case config.SaveName != "":
		target := config.SaveName
		if !filepath.IsAbs(target) && session.ArchiveDir() != "" {
			target = filepath.Join(session.ArchiveDir(), target)
		}
		return session.CreateArchiveSave(target)

	case config.LoadPath != "":
		return session.LoadArchiveSave(config.LoadPath)

	case config.List:
		for _, entry := range session.Archive() {
			fmt.Println(entry)
		}
		return nil
	}

	return nil
}
