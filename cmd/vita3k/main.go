package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	vita3k "github.com/kevinmel2000/Vita3K"
	"github.com/kevinmel2000/Vita3K/config"
	"github.com/kevinmel2000/Vita3K/host"
	"github.com/kevinmel2000/Vita3K/kernel"
)

func main() {
	var (
		prefPath    = flag.String("pref", "", "Root of the emulated filesystem (default platform config dir)")
		configPath  = flag.String("config", "", "Path to config.yml (default <pref>/config.yml)")
		titleID     = flag.String("title", "", "Title ID to boot")
		list        = flag.Bool("list", false, "List installed titles and exit")
		interactive = flag.Bool("i", false, "Interactive title selector")
		trace       = flag.Bool("trace", false, "Trace every import dispatch (implies debug log level)")
	)
	flag.Parse()

	if err := run(*prefPath, *configPath, *titleID, *list, *interactive, *trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(prefPath, configPath, titleID string, list, interactive, trace bool) error {
	if prefPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("no pref path and no user config dir: %w", err)
		}
		prefPath = filepath.Join(dir, vita3k.OrgName)
	}

	if configPath == "" {
		configPath = filepath.Join(prefPath, config.Filename)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.PrefPath == "" {
		cfg.PrefPath = prefPath
	}
	if trace {
		cfg.LogImports = true
		cfg.LogLevel = "debug"
	}

	log, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	host.SetLogger(log.Named("host"))
	kernel.SetLogger(log.Named("kernel"))

	base, err := os.Getwd()
	if err != nil {
		base = "."
	}

	h, err := host.Init(base, cfg.PrefPath, cfg)
	if err != nil {
		return err
	}

	if list {
		if len(h.Titles) == 0 {
			fmt.Println("No titles installed under", filepath.Join(cfg.PrefPath, "ux0", "app"))
			return nil
		}
		for _, t := range h.Titles {
			fmt.Printf("%-12s %s\n", t.ID, t.Title)
		}
		return nil
	}

	if titleID == "" && interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		chosen, err := selectTitle(h.Titles)
		if err != nil {
			return err
		}
		titleID = chosen.ID
	}
	if titleID == "" {
		return fmt.Errorf("no title selected; use -title, -i or -list")
	}

	h.TitleID = titleID
	for _, t := range h.Titles {
		if t.ID == titleID {
			h.GameTitle = t.Title
		}
	}

	log.Info("booting title",
		zap.String("title_id", h.TitleID),
		zap.String("title", h.GameTitle),
		zap.String("version", vita3k.Version))

	return frameLoop(h, log)
}

// frameLoop is the host control loop: pump events, present frames, drive
// the audio mixer, at the console's 60Hz. The interpreter and GPU run in
// their own subsystems; from here they only see FrameDone and the present
// queue.
func frameLoop(h *host.State, log *zap.Logger) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			h.Events <- host.Event{Type: host.EventQuit}
		case <-ticker.C:
		}

		if !host.HandleEvents(h) {
			log.Info("shutting down")
			return nil
		}

		// Drain queued framebuffers; presentation itself is the
		// renderer's job.
		for {
			if _, ok := h.Display.Present.TryPop(); !ok {
				break
			}
		}
		h.Display.FrameDone()
		h.Audio.Process()
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	return cfg.Build()
}
