package page

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/3-lines-studio/banner/internal/core"
	"github.com/3-lines-studio/banner/internal/runtime"
	"github.com/3-lines-studio/banner/internal/types"
)

type Handler struct {
	render   types.RenderFunc
	config   types.PageConfig
	isDev    bool
	errorLog *log.Logger
}

func NewHandler(render types.RenderFunc, config types.PageConfig, isDev bool, errorLog *log.Logger) http.Handler {
	return &Handler{
		render:   render,
		config:   config,
		isDev:    isDev,
		errorLog: errorLog,
	}
}

// Render produces the full document for the configured component.
func Render(render types.RenderFunc, config types.PageConfig) (string, error) {
	if render == nil {
		return "", fmt.Errorf("%w: no component", runtime.ErrRenderFailed)
	}

	var body bytes.Buffer
	if err := render(&body); err != nil {
		return "", fmt.Errorf("%w: %v", runtime.ErrRenderFailed, err)
	}

	return core.RenderHTMLShell(core.ShellData{
		Title:      config.Title,
		Lang:       config.Lang,
		Stylesheet: config.Stylesheet,
		Body:       template.HTML(body.String()),
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		h.serveError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", req.Method))
		return
	}

	html, err := Render(h.render, h.config)
	if err != nil {
		h.serveError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(html))
}

func (h *Handler) serveError(w http.ResponseWriter, status int, err error) {
	if h.errorLog != nil && status >= http.StatusInternalServerError {
		h.errorLog.Printf("%s: %v", h.config.Route, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = core.ErrorTemplate.Execute(w, core.ErrorData{
		Status:  status,
		Message: err.Error(),
		IsDev:   h.isDev,
	})
}
