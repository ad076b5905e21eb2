// Package transcript keeps the lines submitted through an input field, so that they can be
// shown again and kept between sessions.
package transcript

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tajtiattila/basedir"

	"github.com/dpinela/lineinput/internal/atomicwrite"
)

// A Transcript holds the most recent lines submitted, oldest first.
// It implements the io.ReaderFrom and io.WriterTo interfaces, using one line of text per entry.
type Transcript struct {
	lines []string
	limit int
}

// New returns an empty Transcript that keeps at most limit lines.
func New(limit int) *Transcript {
	if limit < 0 {
		limit = 0
	}
	return &Transcript{limit: limit}
}

// Add records a submitted line, discarding the oldest one if the transcript is full.
func (t *Transcript) Add(line string) {
	if t.limit == 0 {
		return
	}
	line = strings.NewReplacer("\r", " ", "\n", " ").Replace(line)
	if len(t.lines) == t.limit {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:len(t.lines)-1]
	}
	t.lines = append(t.lines, line)
}

// Len returns the number of lines in the transcript.
func (t *Transcript) Len() int { return len(t.lines) }

// Last returns the last n lines of the transcript, or all of them if there are fewer than n.
// Callers should not modify the returned slice.
func (t *Transcript) Last(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(t.lines) {
		n = len(t.lines)
	}
	return t.lines[len(t.lines)-n:]
}

// ReadFrom reads lines from r until EOF, adding each one to the transcript.
func (t *Transcript) ReadFrom(r io.Reader) (n int64, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		n += int64(len(sc.Bytes())) + 1
		t.Add(sc.Text())
	}
	return n, sc.Err()
}

// WriteTo writes the transcript's lines to w, each followed by a newline.
func (t *Transcript) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range t.lines {
		nw, err := bw.WriteString(line)
		n += int64(nw)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// DefaultPath returns the location where the transcript is kept between sessions, creating
// the directory that contains it if necessary.
func DefaultPath() (string, error) {
	dir, err := basedir.Data.EnsureDir("lineinput", 0700)
	if err != nil {
		return "", errors.WithMessage(err, "transcript location unavailable")
	}
	return filepath.Join(dir, "transcript"), nil
}

// Load reads the transcript stored at path, keeping at most limit lines.
// A missing file yields an empty transcript. Load always returns a usable *Transcript,
// even if it also returns a non-nil error.
func Load(path string, limit int) (*Transcript, error) {
	t := New(limit)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, errors.Wrap(err, "load transcript")
	}
	defer f.Close()
	_, err = t.ReadFrom(f)
	return t, errors.WithMessage(err, "load transcript "+path)
}

// Save replaces the transcript stored at path with t.
func (t *Transcript) Save(path string) error {
	return errors.WithMessage(atomicwrite.Write(path, func(w io.Writer) error {
		_, err := t.WriteTo(w)
		return err
	}), "save transcript")
}
