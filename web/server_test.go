package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/petal-labs/visionary/core"
	"github.com/petal-labs/visionary/studio"
)

type stubGenerator struct {
	ref      core.ImageRef
	err      error
	enhanced string
	block    chan struct{}
	started  chan struct{}
}

func (g *stubGenerator) ID() string { return "stub" }

func (g *stubGenerator) Enhance(_ context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.enhanced + prompt, nil
}

func (g *stubGenerator) Generate(context.Context, core.GenerationRequest) (core.ImageRef, error) {
	if g.started != nil {
		close(g.started)
	}
	if g.block != nil {
		<-g.block
	}
	return g.ref, g.err
}

func newTestServer(t *testing.T, gen core.Generator) (*httptest.Server, *studio.Session) {
	t.Helper()
	session := studio.New(gen,
		studio.WithClock(func() time.Time { return time.UnixMilli(1767225540000) }),
		studio.WithIDGenerator(func() string { return "img-1" }))
	server := httptest.NewServer(NewServer(session, nil))
	t.Cleanup(server.Close)
	return server, session
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestIndexPage(t *testing.T) {
	server, _ := newTestServer(t, &stubGenerator{})

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"Year-End", `data-ratio="16:9"`, "Artist's Notes", "small independent cafe"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestUnknownPath(t *testing.T) {
	server, _ := newTestServer(t, &stubGenerator{})

	resp, err := http.Get(server.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGenerateCreated(t *testing.T) {
	server, session := newTestServer(t, &stubGenerator{ref: core.NewDataURI("image/png", "aGVsbG8=")})

	resp := postJSON(t, server.URL+"/api/generate", `{"prompt":"cafe","aspect_ratio":"16:9","high_quality":false}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var img core.GeneratedImage
	if err := json.NewDecoder(resp.Body).Decode(&img); err != nil {
		t.Fatal(err)
	}
	if img.ID != "img-1" || img.AspectRatio != core.AspectRatioWide || img.Prompt != "cafe" {
		t.Errorf("image = %+v", img)
	}
	if len(session.Images()) != 1 {
		t.Errorf("session has %d images, want 1", len(session.Images()))
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantKind   string
		wantMsg    string
	}{
		{"empty prompt", `{"prompt":"  ","aspect_ratio":"1:1"}`, nil, http.StatusBadRequest, "invalid_request", ""},
		{"bad ratio", `{"prompt":"x","aspect_ratio":"2:1"}`, nil, http.StatusBadRequest, "invalid_request", ""},
		{"malformed", `{"prompt":`, nil, http.StatusBadRequest, "invalid_request", ""},
		{"credential", `{"prompt":"x","aspect_ratio":"1:1"}`, core.NewCredentialError(nil), http.StatusUnauthorized, "credential", studio.MessageCredential},
		{"no image", `{"prompt":"x","aspect_ratio":"1:1"}`, core.NewNoImageError(""), http.StatusUnprocessableEntity, "no_image", studio.MessageNoImage},
		{"failed", `{"prompt":"x","aspect_ratio":"1:1"}`, core.NewGenerationFailed(errors.New("boom")), http.StatusBadGateway, "generation_failed", studio.MessageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, &stubGenerator{err: tt.err})

			resp := postJSON(t, server.URL+"/api/generate", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var e errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
				t.Fatal(err)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", e.Kind, tt.wantKind)
			}
			if tt.wantMsg != "" && e.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", e.Error, tt.wantMsg)
			}
		})
	}
}

func TestGenerateBusy(t *testing.T) {
	gen := &stubGenerator{
		ref:     core.NewDataURI("image/png", "eA=="),
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	server, _ := newTestServer(t, gen)

	done := make(chan int, 1)
	go func() {
		resp, err := http.Post(server.URL+"/api/generate", "application/json",
			strings.NewReader(`{"prompt":"slow","aspect_ratio":"1:1"}`))
		if err != nil {
			done <- 0
			return
		}
		resp.Body.Close()
		done <- resp.StatusCode
	}()
	<-gen.started

	resp := postJSON(t, server.URL+"/api/generate", `{"prompt":"fast","aspect_ratio":"1:1"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}

	close(gen.block)
	if status := <-done; status != http.StatusCreated {
		t.Errorf("first request status = %d, want 201", status)
	}
}

func TestState(t *testing.T) {
	server, _ := newTestServer(t, &stubGenerator{err: core.NewNoImageError("")})
	postJSON(t, server.URL+"/api/generate", `{"prompt":"x","aspect_ratio":"1:1"}`)

	resp, err := http.Get(server.URL + "/api/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var state studio.State
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatal(err)
	}
	if state.Error != studio.MessageNoImage || state.Generating || len(state.Images) != 0 {
		t.Errorf("state = %+v", state)
	}
}

func TestEnhance(t *testing.T) {
	server, _ := newTestServer(t, &stubGenerator{enhanced: "cinematic "})

	resp := postJSON(t, server.URL+"/api/enhance", `{"prompt":"cafe"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out enhanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Prompt != "cinematic cafe" {
		t.Errorf("prompt = %q", out.Prompt)
	}
}

func TestEnhanceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"credential", core.NewCredentialError(nil), http.StatusUnauthorized, studio.MessageCredential},
		{"failed", core.NewGenerationFailed(errors.New("backend down")), http.StatusBadGateway, studio.MessageEnhanceFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, &stubGenerator{err: tt.err})

			resp := postJSON(t, server.URL+"/api/enhance", `{"prompt":"cafe"}`)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var out errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatal(err)
			}
			if out.Error != tt.message {
				t.Errorf("error = %q, want %q", out.Error, tt.message)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	server, _ := newTestServer(t, &stubGenerator{ref: core.NewDataURI("image/webp", "aGVsbG8=")})
	postJSON(t, server.URL+"/api/generate", `{"prompt":"x","aspect_ratio":"1:1"}`)

	resp, err := http.Get(server.URL + "/api/images/img-1/download")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/webp" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="visionary-1767225540000.webp"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "hello" {
		t.Errorf("body = %q, want hello", body)
	}
}

func TestDownloadNotFound(t *testing.T) {
	server, _ := newTestServer(t, &stubGenerator{})

	resp, err := http.Get(server.URL + "/api/images/missing/download")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
