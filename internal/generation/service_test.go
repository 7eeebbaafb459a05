package generation_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/draftforge/go-sitegen/internal/document"
	"github.com/draftforge/go-sitegen/internal/generation"
)

func testRequest() generation.GenerateRequest {
	return generation.GenerateRequest{
		ProjectID:  uuid.New(),
		Facts:      generation.BusinessFacts{Name: "Acme Plumbing", Industry: "plumbing"},
		TemplateID: "classic",
	}
}

func streamServer(t *testing.T, lines ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			if _, err := w.Write([]byte(line + "\n")); err != nil {
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}))
}

func TestGenerateCompletes(t *testing.T) {
	server := streamServer(t,
		`data: {"status":"generating"}`,
		`data: {"status":"still-working"}`,
		`data: {"status":"completed","result":{"site":{"name":"Acme Plumbing"},"pages":[{"slug":"home","title":"Home"}]}}`,
		`data: [DONE]`,
	)
	defer server.Close()

	svc, err := generation.NewService(server.URL)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	job := generation.NewJob()
	if err := svc.Generate(context.Background(), job, testRequest()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if job.Status() != generation.StatusCompleted {
		t.Fatalf("expected completed got %s", job.Status())
	}
	result := job.Result()
	if result == nil || result.Site == nil || result.Site.Name != "Acme Plumbing" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Pages) != 1 || result.Pages[0].Slug != "home" {
		t.Fatalf("unexpected pages: %+v", result.Pages)
	}
}

func TestGenerateSkipsMalformedLines(t *testing.T) {
	server := streamServer(t,
		`data: {"status":"generating"`,
		`not an event line`,
		`data: {"status":"completed","result":{"pages":[{"slug":"home"}]}}`,
		`data: [DONE]`,
	)
	defer server.Close()

	svc, err := generation.NewService(server.URL)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	job := generation.NewJob()
	if err := svc.Generate(context.Background(), job, testRequest()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if job.Status() != generation.StatusCompleted {
		t.Fatalf("expected completed got %s", job.Status())
	}
}

func TestGenerateErrorEvent(t *testing.T) {
	server := streamServer(t,
		`data: {"status":"error","message":"model unavailable"}`,
		`data: [DONE]`,
	)
	defer server.Close()

	svc, err := generation.NewService(server.URL)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	job := generation.NewJob()
	if err := svc.Generate(context.Background(), job, testRequest()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if job.Status() != generation.StatusError {
		t.Fatalf("expected error state got %s", job.Status())
	}
	if job.ErrorMessage() != "model unavailable" {
		t.Fatalf("unexpected message %q", job.ErrorMessage())
	}

	job.Acknowledge()
	if job.Status() != generation.StatusIdle {
		t.Fatalf("expected idle after acknowledge got %s", job.Status())
	}
}

func TestGenerateStreamEndsWithoutResult(t *testing.T) {
	server := streamServer(t,
		`data: {"status":"generating"}`,
		`data: [DONE]`,
	)
	defer server.Close()

	svc, err := generation.NewService(server.URL)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	job := generation.NewJob()
	err = svc.Generate(context.Background(), job, testRequest())
	if !errors.Is(err, generation.ErrStreamEnded) {
		t.Fatalf("expected ErrStreamEnded got %v", err)
	}
	if job.Status() != generation.StatusError {
		t.Fatalf("expected error state got %s", job.Status())
	}
}

func TestGenerateBillingRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message":"not enough credits","needsCredits":true}`))
	}))
	defer server.Close()

	svc, err := generation.NewService(server.URL)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	job := generation.NewJob()
	err = svc.Generate(context.Background(), job, testRequest())
	if !errors.Is(err, generation.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits got %v", err)
	}
	var svcErr *generation.ServiceError
	if !errors.As(err, &svcErr) || svcErr.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("unexpected service error: %v", err)
	}
	if job.Status() != generation.StatusError || !job.CreditsNeeded() {
		t.Fatalf("expected credits-needed error state got %s (credits %v)", job.Status(), job.CreditsNeeded())
	}
}

func TestGenerateValidatesBeforeNetwork(t *testing.T) {
	svc, err := generation.NewService("http://generator.invalid/generate")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	job := generation.NewJob()
	req := testRequest()
	req.Facts.Name = ""
	if err := svc.Generate(context.Background(), job, req); err == nil {
		t.Fatal("expected validation error")
	}
	if job.Status() != generation.StatusIdle {
		t.Fatalf("validation failure should leave job idle, got %s", job.Status())
	}
}

func TestRegenerateUploadsMultipart(t *testing.T) {
	projectID := uuid.New()
	var gotPath, gotNotes, gotFile string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotNotes = r.FormValue("notes")
		if file, header, err := r.FormFile("files"); err == nil {
			gotFile = header.Filename
			file.Close()
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(`data: {"status":"completed","result":{"pages":[{"slug":"home","title":"Reworked"}]}}` + "\n"))
		w.Write([]byte("data: [DONE]\n"))
	}))
	defer server.Close()

	svc, err := generation.NewService(server.URL+"/generate",
		generation.WithRegenerationEndpoint(server.URL+"/regenerate"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	job := generation.NewJob()
	err = svc.Regenerate(context.Background(), job, generation.RegenerateRequest{
		ProjectID: projectID,
		Notes:     "make it warmer",
		Files: []generation.UploadFile{
			{Name: "brochure.pdf", ContentType: "application/pdf", Content: []byte("pdf-bytes")},
		},
	})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if job.Status() != generation.StatusCompleted {
		t.Fatalf("expected completed got %s", job.Status())
	}
	if gotPath != "/regenerate/"+projectID.String() {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotNotes != "make it warmer" || gotFile != "brochure.pdf" {
		t.Fatalf("unexpected form contents notes=%q file=%q", gotNotes, gotFile)
	}
}

func TestRegenerateRequiresNotesOrFiles(t *testing.T) {
	svc, err := generation.NewService("http://generator.invalid/generate")
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	err = svc.Regenerate(context.Background(), generation.NewJob(), generation.RegenerateRequest{
		ProjectID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMergeResultReplacesTopLevelKeys(t *testing.T) {
	existing := document.New(uuid.New())
	existing.Site = document.SiteConfig{Name: "Old Name", Tagline: "Old tagline"}
	existing.Pages = []*document.Page{
		{Slug: "home", Title: "Home"},
		{Slug: "contact", Title: "Contact"},
	}

	merged := generation.MergeResult(existing, &generation.ResultPayload{
		Site: &document.SiteConfig{Name: "New Name"},
		Pages: []*document.Page{
			{Slug: "home", Title: "Fresh Home"},
			{Slug: "services", Title: "Services"},
		},
	})

	if merged.Site.Name != "New Name" || merged.Site.Tagline != "" {
		t.Fatalf("site should be replaced wholesale: %+v", merged.Site)
	}
	if len(merged.Pages) != 3 {
		t.Fatalf("expected 3 pages got %d", len(merged.Pages))
	}
	if merged.Pages[0].Title != "Fresh Home" {
		t.Fatalf("matching slug should be replaced: %+v", merged.Pages[0])
	}
	if merged.Pages[1].Slug != "contact" || merged.Pages[1].Title != "Contact" {
		t.Fatalf("unrelated page should survive: %+v", merged.Pages[1])
	}
	if merged.Pages[2].Slug != "services" {
		t.Fatalf("new page should append: %+v", merged.Pages[2])
	}

	// Untouched input.
	if existing.Site.Name != "Old Name" || len(existing.Pages) != 2 {
		t.Fatalf("merge mutated input: %+v", existing)
	}
}

func TestMergeResultNilPayloadKeepsDocument(t *testing.T) {
	existing := document.New(uuid.New())
	existing.Pages = []*document.Page{{Slug: "home"}}

	merged := generation.MergeResult(existing, nil)
	if len(merged.Pages) != 1 || merged.Pages[0].Slug != "home" {
		t.Fatalf("nil payload should keep pages: %+v", merged.Pages)
	}
}

func TestBuildDocumentFromPayload(t *testing.T) {
	projectID := uuid.New()
	doc := generation.BuildDocument(projectID, &generation.ResultPayload{
		Site:  &document.SiteConfig{Name: "Acme"},
		Pages: []*document.Page{{Slug: "home", Sections: []*document.Section{{ID: "a", Kind: "hero", Order: 4}}}},
	})

	if doc.ProjectID != projectID {
		t.Fatalf("expected project id carried over, got %s", doc.ProjectID)
	}
	if doc.Site.Name != "Acme" || len(doc.Pages) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Pages[0].Sections[0].Order != 0 {
		t.Fatalf("expected normalized order got %d", doc.Pages[0].Sections[0].Order)
	}
}

func TestNewServiceRequiresEndpoint(t *testing.T) {
	if _, err := generation.NewService("  "); !errors.Is(err, generation.ErrEndpointRequired) {
		t.Fatalf("expected ErrEndpointRequired got %v", err)
	}
}
