package generation

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	eventPrefix  = "data: "
	doneSentinel = "data: [DONE]"

	readChunkSize = 4096
)

// streamDecoder reassembles UTF-8 text from arbitrary byte chunks. Chunk
// boundaries can fall in the middle of a multi-byte rune, so up to three
// trailing bytes of an incomplete rune are carried into the next decode call.
type streamDecoder struct {
	carry []byte
}

// decode returns the complete-rune prefix of carry+chunk and retains the
// incomplete tail, if any, for the next call.
func (d *streamDecoder) decode(chunk []byte) string {
	buf := append(d.carry, chunk...)
	d.carry = nil

	cut := len(buf)
	for back := 1; back <= utf8.UTFMax-1 && back <= len(buf); back++ {
		b := buf[len(buf)-back]
		if !utf8.RuneStart(b) {
			continue
		}
		// Found the start byte of the final rune. Keep it only if every
		// byte of the rune has arrived.
		if size := expectedRuneLen(b); size > back {
			cut = len(buf) - back
		}
		break
	}

	d.carry = append(d.carry, buf[cut:]...)
	return string(buf[:cut])
}

// flush returns whatever bytes remain buffered. Called at end of stream where
// a truncated rune can no longer complete.
func (d *streamDecoder) flush() string {
	out := string(d.carry)
	d.carry = nil
	return out
}

func expectedRuneLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// consumeLines reads the stream chunk by chunk, splits the decoded text on
// newlines and hands each non-empty line to handle. Consumption stops when
// handle returns false, the reader is exhausted, or ctx is cancelled.
func consumeLines(ctx context.Context, r io.Reader, handle func(line string) bool) error {
	decoder := &streamDecoder{}
	chunk := make([]byte, readChunkSize)
	var pending strings.Builder

	emit := func(text string) bool {
		for {
			idx := strings.IndexByte(text, '\n')
			if idx < 0 {
				pending.WriteString(text)
				return true
			}
			line := pending.String() + text[:idx]
			pending.Reset()
			text = text[idx+1:]
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !handle(line) {
				return false
			}
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(chunk)
		if n > 0 {
			if !emit(decoder.decode(chunk[:n])) {
				return nil
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			break
		}
	}

	// Final line without a trailing newline.
	tail := pending.String() + decoder.flush()
	tail = strings.TrimRight(tail, "\r")
	if strings.TrimSpace(tail) != "" {
		handle(tail)
	}
	return nil
}
