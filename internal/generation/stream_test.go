package generation

import (
	"context"
	"strings"
	"testing"
)

func TestStreamDecoderSplitsMidRune(t *testing.T) {
	text := "café ✓ — ありがとう"
	raw := []byte(text)

	decoder := &streamDecoder{}
	var out strings.Builder
	// Feed one byte at a time so every multi-byte rune straddles a boundary.
	for _, b := range raw {
		out.WriteString(decoder.decode([]byte{b}))
	}
	out.WriteString(decoder.flush())

	if out.String() != text {
		t.Fatalf("expected %q got %q", text, out.String())
	}
}

func TestStreamDecoderCarriesPartialTail(t *testing.T) {
	// "é" is 0xC3 0xA9.
	decoder := &streamDecoder{}
	if got := decoder.decode([]byte{'a', 0xC3}); got != "a" {
		t.Fatalf("expected partial rune held back, got %q", got)
	}
	if got := decoder.decode([]byte{0xA9, 'b'}); got != "éb" {
		t.Fatalf("expected completed rune, got %q", got)
	}
}

func TestConsumeLinesSplitsAndSkipsBlanks(t *testing.T) {
	input := "data: one\n\r\ndata: two\r\ndata: three"
	var lines []string
	err := consumeLines(context.Background(), strings.NewReader(input), func(line string) bool {
		lines = append(lines, line)
		return true
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	want := []string{"data: one", "data: two", "data: three"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("expected %v got %v", want, lines)
		}
	}
}

func TestConsumeLinesStopsWhenHandlerDeclines(t *testing.T) {
	input := "data: one\ndata: [DONE]\ndata: never\n"
	var lines []string
	err := consumeLines(context.Background(), strings.NewReader(input), func(line string) bool {
		lines = append(lines, line)
		return line != doneSentinel
	})
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if len(lines) != 2 || lines[1] != doneSentinel {
		t.Fatalf("expected stop at sentinel got %v", lines)
	}
}

func TestConsumeLinesHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := consumeLines(ctx, strings.NewReader("data: one\n"), func(string) bool {
		t.Fatal("handler should not run after cancellation")
		return false
	})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled got %v", err)
	}
}
