package logging_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/draftforge/go-sitegen/internal/logging"
	"github.com/draftforge/go-sitegen/internal/logging/console"
)

func TestModuleLoggerAttachesNamespace(t *testing.T) {
	buf := &bytes.Buffer{}
	provider := console.NewProvider(console.Options{
		Writer:   buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0).UTC() },
	})

	logging.EditorLogger(provider).Info("section added")
	entry := buf.String()
	if !strings.Contains(entry, "module=sitegen.editor") {
		t.Fatalf("expected editor namespace got %s", entry)
	}

	buf.Reset()
	logging.RenderLogger(provider).Info("fallback")
	if entry = buf.String(); !strings.Contains(entry, "module=sitegen.render") {
		t.Fatalf("expected render namespace got %s", entry)
	}
}

func TestWithEditContextAttachesFields(t *testing.T) {
	buf := &bytes.Buffer{}
	provider := console.NewProvider(console.Options{
		Writer:   buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0).UTC() },
	})

	logger := logging.WithEditContext(logging.EditorLogger(provider), "p-1", "home", "s-1")
	logger.Debug("update skipped")

	entry := buf.String()
	for _, want := range []string{"project_id=p-1", "page_slug=home", "section_id=s-1"} {
		if !strings.Contains(entry, want) {
			t.Fatalf("expected %s in entry got %s", want, entry)
		}
	}
}

func TestWithEditContextSkipsEmptyValues(t *testing.T) {
	buf := &bytes.Buffer{}
	provider := console.NewProvider(console.Options{
		Writer:   buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0).UTC() },
	})

	logging.WithEditContext(logging.EditorLogger(provider), "", "home", "  ").Debug("page missing")

	entry := buf.String()
	if !strings.Contains(entry, "page_slug=home") {
		t.Fatalf("expected page slug got %s", entry)
	}
	if strings.Contains(entry, "project_id") || strings.Contains(entry, "section_id") {
		t.Fatalf("expected empty fields omitted got %s", entry)
	}
}
