package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dpinela/lineinput/internal/config"
	"github.com/dpinela/lineinput/internal/logging"
	"github.com/dpinela/lineinput/internal/pathwatch"
	"github.com/dpinela/lineinput/internal/termdraw"
	"github.com/dpinela/lineinput/internal/termesc"
	"github.com/dpinela/lineinput/internal/transcript"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	var (
		configPath   = pflag.StringP("config", "c", "", "read configuration from `file` instead of the default location")
		logPath      = pflag.String("log", "", "append debug records to `file`")
		logLevel     = pflag.String("log-level", "info", "minimum `level` of records written to the log")
		maxBytes     = pflag.Int("max-bytes", 0, "capacity of the input field in `bytes`, overriding the configuration")
		maxChars     = pflag.Int("max-chars", 0, "capacity of the input field in `characters`, overriding the configuration")
		noTranscript = pflag.Bool("no-transcript", false, "don't load or save the transcript of submitted lines")
	)
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if pflag.CommandLine.Changed("max-bytes") {
		cfg.MaxBytes = *maxBytes
	}
	if pflag.CommandLine.Changed("max-chars") {
		cfg.MaxChars = *maxChars
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, closeLog, err := logging.Open(*logPath, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	tr := transcript.New(cfg.HistorySize)
	transcriptPath := ""
	if !*noTranscript {
		if transcriptPath, err = transcript.DefaultPath(); err != nil {
			log.Warn("transcript disabled", slog.String("error", err.Error()))
		} else if tr, err = transcript.Load(transcriptPath, cfg.HistorySize); err != nil {
			log.Warn("transcript", slog.String("error", err.Error()))
		}
	}

	if *configPath == "" {
		*configPath, _ = config.DefaultPath()
	}
	var (
		configChanges <-chan struct{}
		configErrors  <-chan error
	)
	if *configPath != "" {
		if w, err := pathwatch.Watch(*configPath); err != nil {
			log.Debug("not watching config file", slog.String("error", err.Error()))
		} else {
			defer w.Close()
			configChanges = w.Changes()
			configErrors = w.Errors()
		}
	}

	w, h, err := terminal.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error finding terminal size:", err)
		os.Exit(2)
	}
	oldMode, err := terminal.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error entering raw mode:", err)
		os.Exit(2)
	}
	os.Stdout.WriteString(termesc.EnterAlternateScreen)

	app := newApplication(cfg, tr, termdraw.NewScreen(os.Stdout, termdraw.Point{X: w, Y: h}), log)
	app.configPath = *configPath
	log.Info("started", slog.Int("maxBytes", cfg.MaxBytes), slog.Int("maxChars", cfg.MaxChars))
	runErr := app.run(os.Stdin, resizeSignal(), configChanges, configErrors)

	os.Stdout.WriteString(termesc.ExitAlternateScreen)
	terminal.Restore(int(os.Stdin.Fd()), oldMode)
	if transcriptPath != "" {
		if err := tr.Save(transcriptPath); err != nil {
			log.Error("transcript", slog.String("error", err.Error()))
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if runErr != nil {
		log.Error("run", slog.String("error", runErr.Error()))
		fmt.Fprintln(os.Stderr, runErr)
		closeLog()
		os.Exit(1)
	}
}
