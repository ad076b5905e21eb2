package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dpinela/lineinput/internal/buffer"
	"github.com/dpinela/lineinput/internal/color"
)

const testConfig = `
MaxBytes = 64
Prompt = "say: "

[TextStyle.Composition]
Foreground = "#FF8000"
Bold = true
`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxBytes != 64 || c.MaxChars != buffer.DefaultMaxChars || c.Prompt != "say: " || c.HistorySize != 100 {
		t.Errorf("got %+v", c)
	}
	comp := c.TextStyle.Composition
	if comp.Foreground == nil || *comp.Foreground != (color.Color{R: 0xFF, G: 0x80}) || !comp.Bold {
		t.Errorf("got composition style %+v", comp)
	}
	if !c.TextStyle.Prompt.Bold {
		t.Errorf("prompt style not defaulted: %+v", c.TextStyle.Prompt)
	}
}

func TestDecodeInvalid(t *testing.T) {
	c, err := Decode(strings.NewReader("MaxChars = -4\nHistorySize = -1\n"))
	if err == nil {
		t.Error("invalid settings accepted without error")
	}
	if c.MaxChars != buffer.DefaultMaxChars || c.HistorySize != 0 {
		t.Errorf("invalid settings not replaced: %+v", c)
	}
}

func TestDecodeBadColor(t *testing.T) {
	c, err := Decode(strings.NewReader("[TextStyle.Prompt]\nForeground = \"#12\"\n"))
	if err == nil {
		t.Error("bad color accepted without error")
	}
	if c == nil || c.MaxBytes != buffer.DefaultMaxBytes {
		t.Errorf("got unusable config %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Errorf("missing file: got error %v", err)
	}
	if c.Prompt != Default().Prompt {
		t.Errorf("missing file: got %+v", c)
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(name, []byte(testConfig), 0600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxBytes != 64 {
		t.Errorf("got MaxBytes = %d, want 64", c.MaxBytes)
	}
}
