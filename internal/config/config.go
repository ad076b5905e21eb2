// Package config defines configuration settings for lineinput and functions for loading them from a file.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/dpinela/lineinput/internal/buffer"
	"github.com/dpinela/lineinput/internal/color"

	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Config struct {
	MaxBytes    int    // Capacity of the input field, in bytes
	MaxChars    int    // Capacity of the input field, in characters
	Prompt      string // Shown to the left of the input field
	HistorySize int    // Number of submitted lines to keep in the transcript
	TextStyle   struct {
		Prompt, Composition Style
	}
}

type Style struct {
	Foreground, Background  *color.Color
	Bold, Italic, Underline bool
}

// Default returns the configuration used when no configuration file is present.
func Default() *Config {
	c := &Config{
		MaxBytes:    buffer.DefaultMaxBytes,
		MaxChars:    buffer.DefaultMaxChars,
		Prompt:      "> ",
		HistorySize: 100,
	}
	c.fillStyles()
	return c
}

func (c *Config) fillStyles() {
	if c.TextStyle.Prompt == (Style{}) {
		c.TextStyle.Prompt = Style{Bold: true}
	}
	if c.TextStyle.Composition == (Style{}) {
		c.TextStyle.Composition = Style{Underline: true, Foreground: &color.Color{R: 0, G: 200, B: 200}}
	}
}

// Validate replaces settings that can't be used with their defaults.
// It returns an error describing the first setting it replaced, if any.
func (c *Config) Validate() error {
	var err error
	replaced := func(name string, bad, good int) {
		if err == nil {
			err = fmt.Errorf("invalid %s %d, using %d", name, bad, good)
		}
	}
	if c.MaxBytes < 2 {
		replaced("MaxBytes", c.MaxBytes, buffer.DefaultMaxBytes)
		c.MaxBytes = buffer.DefaultMaxBytes
	}
	if c.MaxChars < 2 {
		replaced("MaxChars", c.MaxChars, buffer.DefaultMaxChars)
		c.MaxChars = buffer.DefaultMaxChars
	}
	if c.HistorySize < 0 {
		replaced("HistorySize", c.HistorySize, 0)
		c.HistorySize = 0
	}
	return err
}

// DefaultPath returns the location of the user's configuration file, according to the
// XDG base directory specification for configuration files: lineinput/config.toml in the
// user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lineinput", "config.toml"), nil
}

// Load reads the configuration file at path. If path is empty, it uses DefaultPath.
// It always returns a usable *Config, even if it also returns a non-nil error; a missing
// file is not an error.
func Load(path string) (c *Config, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error loading config file: %w", err)
		}
	}()
	c = Default()
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return c, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
		}
		return c, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a configuration file from r. Like Load, it always returns a usable *Config.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	c.TextStyle.Prompt = Style{}
	c.TextStyle.Composition = Style{}
	_, err := toml.DecodeReader(r, c)
	c.fillStyles()
	if verr := c.Validate(); err == nil {
		err = verr
	}
	return c, err
}
