package termesc

import (
	"bufio"
	"io"
)

// A ConsoleReader splits terminal input into tokens: single UTF-8 characters, escape
// sequences, and lone escape characters.
type ConsoleReader struct {
	r   *bufio.Reader
	buf []byte
}

// NewConsoleReader returns a ConsoleReader that reads from r.
func NewConsoleReader(r io.Reader) *ConsoleReader {
	return &ConsoleReader{r: bufio.NewReader(r), buf: make([]byte, 0, 16)}
}

// ReadToken returns the next token in the input.
// An escape character is returned on its own if no more input is immediately available,
// so that the Escape key can be told apart from the start of a sequence.
func (c *ConsoleReader) ReadToken() (string, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return "", err
	}
	c.buf = append(c.buf[:0], b)
	if b == esc[0] {
		return c.readEscape()
	}
	for n := seqLen(b) - 1; n > 0; n-- {
		next, err := c.r.Peek(1)
		if err != nil || next[0]&0xC0 != 0x80 {
			break
		}
		c.buf = append(c.buf, next[0])
		c.r.ReadByte()
	}
	return string(c.buf), nil
}

func (c *ConsoleReader) readEscape() (string, error) {
	if c.r.Buffered() == 0 {
		return EscapeKey, nil
	}
	next, _ := c.r.Peek(1)
	switch next[0] {
	case '[':
		c.appendByte()
		if c.r.Buffered() > 0 {
			if p, _ := c.r.Peek(1); p[0] == 'M' {
				// Old-style mouse report: the button and coordinates follow as raw bytes.
				for i := 0; i < 4; i++ {
					if err := c.appendByte(); err != nil {
						return string(c.buf), err
					}
				}
				return string(c.buf), nil
			}
		}
		for {
			if err := c.appendByte(); err != nil {
				return string(c.buf), err
			}
			if last := c.buf[len(c.buf)-1]; last >= 0x40 && last <= 0x7E {
				return string(c.buf), nil
			}
		}
	case 'O':
		c.appendByte()
		err := c.appendByte()
		return string(c.buf), err
	}
	return EscapeKey, nil
}

func (c *ConsoleReader) appendByte() error {
	b, err := c.r.ReadByte()
	if err != nil {
		return err
	}
	c.buf = append(c.buf, b)
	return nil
}

// seqLen returns the length of the UTF-8 sequence starting with b, or 1 if b cannot
// start a multi-byte sequence.
func seqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 1
}
