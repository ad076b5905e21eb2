package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/dpinela/lineinput/internal/buffer"
	"github.com/dpinela/lineinput/internal/config"
	"github.com/dpinela/lineinput/internal/termdraw"
	"github.com/dpinela/lineinput/internal/termesc"
	"github.com/dpinela/lineinput/internal/transcript"

	"golang.org/x/crypto/ssh/terminal"
)

type application struct {
	field      *buffer.Buffer
	transcript *transcript.Transcript
	config     *config.Config
	configPath string // Where to reload the configuration from when it changes
	screen     *termdraw.Screen
	log        *slog.Logger

	// Composition mode stands in for an input method: typed text is held back in
	// composition, and shown in the field without being committed, until Enter is pressed.
	composing         bool
	composition       string
	compositionCursor int // Byte offset into composition
}

func newApplication(cfg *config.Config, tr *transcript.Transcript, screen *termdraw.Screen, log *slog.Logger) *application {
	return &application{
		field:      buffer.New(cfg.MaxBytes, cfg.MaxChars),
		transcript: tr,
		config:     cfg,
		screen:     screen,
		log:        log,
	}
}

func (app *application) run(in io.Reader, resizeSignal <-chan os.Signal, configChanges <-chan struct{}, configErrors <-chan error) error {
	inputCh := make(chan string, 32)
	done := make(chan struct{})
	defer close(done)
	go readTokens(in, inputCh, done)
	for {
		if err := app.redraw(); err != nil {
			return err
		}
		select {
		case tok, ok := <-inputCh:
			if !ok {
				return nil
			}
			if app.handleToken(tok) {
				return nil
			}
		case <-resizeSignal:
			// This can only fail if our terminal turns into a non-terminal
			// during execution, which is highly unlikely.
			if w, h, err := terminal.GetSize(0); err != nil {
				return err
			} else {
				app.screen.Resize(termdraw.Point{X: w, Y: h})
			}
		case <-configChanges:
			app.reloadConfig()
		case err := <-configErrors:
			app.log.Warn("watching config file", slog.String("path", app.configPath), slog.String("error", err.Error()))
		}
	}
}

// readTokens sends the tokens read from in to out until in is exhausted, then closes out.
// It stops early, leaving out open, once done is closed.
func readTokens(in io.Reader, out chan<- string, done <-chan struct{}) {
	con := termesc.NewConsoleReader(in)
	for {
		s, err := con.ReadToken()
		if err != nil {
			close(out)
			return
		}
		select {
		case out <- s:
		case <-done:
			return
		}
	}
}

// handleToken acts on a single token read from the console. It reports whether the
// application should exit.
func (app *application) handleToken(tok string) (quit bool) {
	cmd, ev := translateToken(tok)
	if app.composing && app.handleCompositionToken(cmd, ev) {
		app.updateComposition()
		return false
	}
	switch cmd {
	case cmdEdit:
		if !app.field.ProcessInput(ev) && ev.Flags&buffer.FlagText != 0 {
			app.log.Debug("insert rejected", slog.Int("bytes", app.field.Len()), slog.Int("chars", app.field.NumChars()))
		}
	case cmdSubmit:
		app.submit()
	case cmdCancel:
		app.field.Clear()
	case cmdDeleteUntilCursor:
		app.field.DeleteUntilCursor()
	case cmdDeleteFromCursor:
		app.field.DeleteFromCursor()
	case cmdToggleComposition:
		app.composing = true
		app.log.Debug("composition mode on")
	case cmdQuit:
		return true
	}
	return false
}

// handleCompositionToken applies a command to the pending composition. It reports whether
// the command was consumed; if not, it applies to the input field as usual.
func (app *application) handleCompositionToken(cmd command, ev buffer.Event) bool {
	pending := app.composition != ""
	switch {
	case cmd == cmdEdit && ev.Flags&buffer.FlagText != 0:
		if len(app.composition)+len(ev.Text) < buffer.InputTextSize {
			c := app.compositionCursor
			app.composition = app.composition[:c] + ev.Text + app.composition[c:]
			app.compositionCursor += len(ev.Text)
		}
		return true
	case cmd == cmdEdit && pending:
		app.editComposition(ev.Key)
		return true
	case cmd == cmdSubmit && pending:
		app.commitComposition()
		return true
	case cmd == cmdCancel && pending:
		app.discardComposition()
		return true
	case cmd == cmdCancel, cmd == cmdToggleComposition:
		app.commitComposition()
		app.composing = false
		app.log.Debug("composition mode off")
		return true
	}
	return false
}

func (app *application) editComposition(k buffer.Key) {
	s := []byte(app.composition)
	c := app.compositionCursor
	switch k {
	case buffer.KeyBackspace:
		if p := buffer.BackwardBoundary(s, c); p < c {
			app.composition = app.composition[:p] + app.composition[c:]
			app.compositionCursor = p
		}
	case buffer.KeyDelete:
		if p := buffer.ForwardBoundary(s, c); p > c {
			app.composition = app.composition[:c] + app.composition[p:]
		}
	case buffer.KeyLeft:
		app.compositionCursor = buffer.BackwardBoundary(s, c)
	case buffer.KeyRight:
		app.compositionCursor = buffer.ForwardBoundary(s, c)
	case buffer.KeyHome:
		app.compositionCursor = 0
	case buffer.KeyEnd:
		app.compositionCursor = len(s)
	}
}

// commitComposition inserts the pending composition into the input field as typed text.
func (app *application) commitComposition() {
	if app.composition == "" {
		return
	}
	if !app.field.ProcessInput(buffer.TextEvent(app.composition)) {
		app.log.Info("composition rejected", slog.String("text", app.composition), slog.Int("bytes", app.field.Len()))
	}
	app.discardComposition()
}

func (app *application) discardComposition() {
	app.composition = ""
	app.compositionCursor = 0
}

// updateComposition shows the pending composition in the input field, if there is one.
func (app *application) updateComposition() {
	if app.composition == "" {
		app.field.StopEditing()
		return
	}
	app.field.Editing(app.composition, app.compositionCursor)
}

// submit moves the content of the input field to the transcript.
func (app *application) submit() {
	line := app.field.String()
	if line == "" {
		return
	}
	app.transcript.Add(line)
	app.log.Info("line submitted", slog.Int("bytes", len(line)), slog.Int("chars", app.field.NumChars()))
	app.field.Clear()
}

// reloadConfig rereads the configuration file after it changes. The input field's capacity
// is fixed for the lifetime of the field, so only the appearance can change here.
func (app *application) reloadConfig() {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		app.log.Warn("config reload", slog.String("error", err.Error()))
	}
	if cfg.MaxBytes != app.field.MaxBytes() || cfg.MaxChars != app.field.MaxChars() {
		app.log.Info("input field capacity changes take effect on restart",
			slog.Int("maxBytes", cfg.MaxBytes), slog.Int("maxChars", cfg.MaxChars))
	}
	cfg.MaxBytes, cfg.MaxChars = app.field.MaxBytes(), app.field.MaxChars()
	app.config = cfg
	app.log.Info("config reloaded", slog.String("path", app.configPath))
}
