package cmpengine

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestHandlerRender(t *testing.T) {
	e := newTestEngine(t)
	h := e.Handler()

	result, err := NewTestRequest(http.MethodPost, "/render").
		WithBody(jsonDoc).
		WithHeader("Content-Type", "application/json").
		Execute(h)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !result.IsOK() {
		t.Fatalf("status = %d, body %q", result.StatusCode, result.HTML)
	}
	if !result.HasHeader("Content-Type", "text/html; charset=utf-8") {
		t.Errorf("Content-Type = %q", result.GetHeader("Content-Type"))
	}
	if !result.HasBlock("Col", "c1") || !result.HasBlock("Txt", "t1") {
		t.Errorf("missing blocks in %q", result.HTML)
	}
	if got := result.FindBlock("Col", "c1").Children; len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("Txt should nest inside Col, got %+v", got)
	}
}

func TestHandlerRenderLive(t *testing.T) {
	e := newTestEngine(t)

	result, err := NewTestRequest(http.MethodPost, "/render?mode=live").
		WithBody(`{"componentType":"Leaf","id":"l"}`).
		Execute(e.Handler())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.HTML != `<div class="Leaf l"></div>` {
		t.Errorf("got %q", result.HTML)
	}
	if result.BlockCount() != 0 {
		t.Error("live output should carry no markers")
	}
}

func TestHandlerRenderMsgpackBody(t *testing.T) {
	e := newTestEngine(t)
	body, err := msgpack.Marshal(colTree)
	if err != nil {
		t.Fatal(err)
	}

	result, err := NewTestRequest(http.MethodPost, "/render").
		WithBodyBytes(body).
		WithHeader("Content-Type", "application/msgpack").
		Execute(e.Handler())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.HTMLContains(`<span class="Txt t1">hi</span>`) {
		t.Errorf("got %q", result.HTML)
	}
}

func TestHandlerBadBody(t *testing.T) {
	e := newTestEngine(t)

	result, err := NewTestRequest(http.MethodPost, "/render").
		WithBody("{oops").
		Execute(e.Handler())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.HasStatus(http.StatusBadRequest) {
		t.Errorf("status = %d, want 400", result.StatusCode)
	}
}

func TestHandlerStyles(t *testing.T) {
	e := newTestEngine(t, WithNamespace(".site"))

	result, err := NewTestRequest(http.MethodPost, "/styles").
		WithBody(jsonDoc).
		Execute(e.Handler())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.StylesContain(".site .Col{display:flex}") || !result.StylesContain(".site .Txt{color:red}") {
		t.Errorf("styles = %q", result.Styles)
	}
}

func TestHandlerSealAndRender(t *testing.T) {
	e := newTestEngine(t)
	h := e.Handler()

	for _, sensitive := range []string{"false", "true"} {
		t.Run("sensitive="+sensitive, func(t *testing.T) {
			sealed, err := NewTestRequest(http.MethodPost, "/seal?sensitive="+sensitive).
				WithBody(jsonDoc).
				Execute(h)
			if err != nil {
				t.Fatalf("seal: %v", err)
			}
			if !sealed.IsOK() {
				t.Fatalf("seal status = %d", sealed.StatusCode)
			}
			token := strings.TrimSpace(sealed.HTML)
			if isSigned := strings.Contains(token, "."); isSigned == (sensitive == "true") {
				t.Errorf("token %q has the wrong form", token)
			}

			result, err := NewTestRequest(http.MethodGet, "/render?d="+url.QueryEscape(token)).Execute(h)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !result.IsOK() || !result.HasBlock("Txt", "t1") {
				t.Errorf("status %d, html %q", result.StatusCode, result.HTML)
			}
		})
	}
}

func TestHandlerTokenErrors(t *testing.T) {
	e := newTestEngine(t)
	other := NewEngine(WithKey([]byte("another key entirely")))
	foreign, err := other.Seal(colTree, false)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		url  string
	}{
		{"missing token", "/render"},
		{"garbage token", "/render?d=%%%"},
		{"foreign key", "/styles?d=" + url.QueryEscape(foreign)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewTestRequest(http.MethodGet, tt.url).Execute(e.Handler())
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if !result.HasStatus(http.StatusBadRequest) {
				t.Errorf("status = %d, want 400", result.StatusCode)
			}
		})
	}
}

func TestHandlerTypes(t *testing.T) {
	e := newTestEngine(t)
	h := e.Handler()

	result, err := NewTestRequest(http.MethodGet, "/types").Execute(h)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	var palette []PaletteEntry
	if err := json.Unmarshal([]byte(result.HTML), &palette); err != nil {
		t.Fatalf("decode palette: %v", err)
	}
	if len(palette) != 4 || palette[0].Type != "Col" || !palette[0].HasChildren {
		t.Errorf("palette = %+v", palette)
	}

	result, err = NewTestRequest(http.MethodGet, "/types/Txt").Execute(h)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.IsOK() || !result.HTMLContains(`"styles":".Txt{color:red}"`) {
		t.Errorf("status %d, body %q", result.StatusCode, result.HTML)
	}

	result, err = NewTestRequest(http.MethodGet, "/types/Nope").Execute(h)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.HasStatus(http.StatusNotFound) {
		t.Errorf("status = %d, want 404", result.StatusCode)
	}
}

func TestHandlerPage(t *testing.T) {
	e := newTestEngine(t)
	token, err := e.Seal(colTree, false)
	if err != nil {
		t.Fatal(err)
	}

	result, err := NewTestRequest(http.MethodGet, "/page?title=Home&d="+url.QueryEscape(token)).Execute(e.Handler())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.HTMLContainsAll(
		"<title>Home</title>",
		"<style>.ComponentEngine .Col{display:flex}",
		`<div class="ComponentEngine"><div class="Col c1">`,
	) {
		t.Errorf("page = %q", result.HTML)
	}
}

func TestHandlerCustomOnError(t *testing.T) {
	e := newTestEngine(t)
	var got error
	e.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}

	result, err := NewTestRequest(http.MethodGet, "/types/Nope").Execute(e.Handler())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.HasStatus(http.StatusTeapot) || !IsNotFound(got) {
		t.Errorf("status %d, err %v", result.StatusCode, got)
	}
}
