package cmpengine

import (
	"fmt"
	"net/http"
	"strconv"
)

// maxBodyBytes bounds description bodies accepted by the handler.
const maxBodyBytes = 1 << 20

// Handler returns the HTTP handler for the engine:
//
//	GET  /types          registered components and their metadata (JSON)
//	GET  /types/{type}   one component's metadata
//	POST /render         render a description body (?mode=live|string)
//	GET  /render?d=TOKEN render a sealed description
//	POST /styles         collect styles for a description body
//	GET  /styles?d=TOKEN collect styles for a sealed description
//	POST /seal           seal a description body (?sensitive=true)
//	GET  /page?d=TOKEN   full HTML page for a sealed description
//
// Bodies are JSON unless Content-Type names msgpack, YAML or TOML.
func (e *Engine) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /types", e.handleTypes)
	mux.HandleFunc("GET /types/{type}", e.handleType)
	mux.HandleFunc("POST /render", e.withBody(e.serveRender))
	mux.HandleFunc("GET /render", e.withToken(e.serveRender))
	mux.HandleFunc("POST /styles", e.withBody(e.serveStyles))
	mux.HandleFunc("GET /styles", e.withToken(e.serveStyles))
	mux.HandleFunc("POST /seal", e.withBody(e.serveSeal))
	mux.HandleFunc("GET /page", e.withToken(e.servePage))
	return mux
}

type descHandler func(w http.ResponseWriter, r *http.Request, desc Description) error

// withBody decodes the request body into a description.
func (e *Engine) withBody(next descHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		desc, err := DecodeDescription(body, FormatFromContentType(r.Header.Get("Content-Type")))
		if err != nil {
			e.OnError(w, r, err)
			return
		}
		if err := next(w, r, desc); err != nil {
			e.OnError(w, r, err)
		}
	}
}

// withToken opens the description sealed in the d query parameter.
func (e *Engine) withToken(next descHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("d")
		if token == "" {
			e.OnError(w, r, fmt.Errorf("%w: missing d parameter", ErrInvalidFormat))
			return
		}
		desc, err := e.Open(token)
		if err != nil {
			e.OnError(w, r, err)
			return
		}
		if err := next(w, r, desc); err != nil {
			e.OnError(w, r, err)
		}
	}
}

func (e *Engine) handleTypes(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, e.registry.Palette()); err != nil {
		e.OnError(w, r, err)
	}
}

func (e *Engine) handleType(w http.ResponseWriter, r *http.Request) {
	t := r.PathValue("type")
	if _, ok := e.registry.Lookup(t); !ok {
		e.OnError(w, r, fmt.Errorf("%w: %q", ErrNotFound, t))
		return
	}
	meta := e.registry.MetadataFor(t)
	meta.Title = e.registry.Title(t)
	if err := writeJSON(w, PaletteEntry{Type: t, Metadata: meta}); err != nil {
		e.OnError(w, r, err)
	}
}

func (e *Engine) serveRender(w http.ResponseWriter, r *http.Request, desc Description) error {
	if r.URL.Query().Get("mode") == LiveMode.String() {
		return Render(w, r, e.Render(desc))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write([]byte(e.RenderString(desc)))
	return err
}

func (e *Engine) serveStyles(w http.ResponseWriter, r *http.Request, desc Description) error {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, err := w.Write([]byte(e.RenderStyles(desc)))
	return err
}

func (e *Engine) serveSeal(w http.ResponseWriter, r *http.Request, desc Description) error {
	sensitive, _ := strconv.ParseBool(r.URL.Query().Get("sensitive"))
	token, err := e.Seal(desc, sensitive)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err = w.Write([]byte(token))
	return err
}

func (e *Engine) servePage(w http.ResponseWriter, r *http.Request, desc Description) error {
	title := r.URL.Query().Get("title")
	if title == "" {
		title = e.registry.Title(desc.ComponentType)
	}
	return Render(w, r, e.Page(title, desc))
}

func (e *Engine) defaultOnError(w http.ResponseWriter, r *http.Request, err error) {
	e.logger.Warn().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")

	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsDecryptionError(err), IsInvalidInput(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
