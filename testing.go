package cmpengine

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/pthm/cmpengine/lib/blocks"
)

// TestResult holds the output of rendering a description for testing.
//
// Provides convenience methods for asserting on markup, block markers,
// styles, and HTTP responses.
type TestResult struct {
	HTML       string
	Styles     string
	Blocks     []*blocks.Block
	StatusCode int
	Headers    http.Header
}

// TestRender renders desc to a string with block markers, collects its
// styles and parses the markers back:
//
//	result, err := cmpengine.TestRender(eng, desc)
//	if !result.HasBlock("TextWidget", "intro") {
//	    t.Fatal("missing block")
//	}
func TestRender(e *Engine, desc Description) (*TestResult, error) {
	html := RenderToString(e.Build(desc, StringMode), BlockMarkers)
	parsed, err := blocks.Parse(html)
	if err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       html,
		Styles:     e.RenderStyles(desc),
		Blocks:     parsed,
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestRenderLive renders desc through the templ path with ctx.
func TestRenderLive(ctx context.Context, e *Engine, desc Description) (*TestResult, error) {
	var buf bytes.Buffer
	if err := e.Render(desc).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       buf.String(),
		Styles:     e.RenderStyles(desc),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// StylesContain checks if the collected styles contain a substring.
func (r *TestResult) StylesContain(substr string) bool {
	return strings.Contains(r.Styles, substr)
}

// HasBlock checks if a block with the given type and id was rendered at
// any depth.
func (r *TestResult) HasBlock(componentType, id string) bool {
	return r.FindBlock(componentType, id) != nil
}

// FindBlock returns the block with the given type and id, or nil.
func (r *TestResult) FindBlock(componentType, id string) *blocks.Block {
	for _, b := range blocks.Flatten(r.Blocks) {
		if b.Type == componentType && b.ID == id {
			return b
		}
	}
	return nil
}

// BlockCount returns the number of blocks at any depth.
func (r *TestResult) BlockCount() int {
	return len(blocks.Flatten(r.Blocks))
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// TestRequestBuilder provides a fluent interface for building test requests
// against an engine's Handler.
//
//	result, err := cmpengine.NewTestRequest("POST", "/render").
//	    WithBody(`{"componentType":"TextWidget"}`).
//	    WithHeader("Content-Type", "application/json").
//	    Execute(eng.Handler())
type TestRequestBuilder struct {
	method  string
	url     string
	body    io.Reader
	headers map[string]string
	ctx     context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, url string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:  method,
		url:     url,
		headers: make(map[string]string),
		ctx:     context.Background(),
	}
}

// WithBody sets the request body.
func (b *TestRequestBuilder) WithBody(body string) *TestRequestBuilder {
	b.body = strings.NewReader(body)
	return b
}

// WithBodyBytes sets a binary request body.
func (b *TestRequestBuilder) WithBodyBytes(body []byte) *TestRequestBuilder {
	b.body = bytes.NewReader(body)
	return b
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute executes the request against h. When the response is markup
// containing block markers they are parsed into Blocks.
func (b *TestRequestBuilder) Execute(h http.Handler) (*TestResult, error) {
	body := b.body
	if body == nil {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(b.method, b.url, body)
	req = req.WithContext(b.ctx)
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}

	if strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		parsed, err := blocks.Parse(result.HTML)
		if err != nil {
			return nil, err
		}
		result.Blocks = parsed
	}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css") {
		result.Styles = result.HTML
	}

	return result, nil
}
