package banner

import (
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/banner/internal/assets"
	"github.com/3-lines-studio/banner/internal/component"
	"github.com/3-lines-studio/banner/internal/page"
	"github.com/3-lines-studio/banner/internal/runtime"
	"github.com/3-lines-studio/banner/internal/types"
)

type PageConfig = types.PageConfig

type App struct {
	assetsFS fs.FS
	config   types.PageConfig
	isDev    bool
	maxAge   time.Duration
	errorLog *log.Logger
	render   types.RenderFunc
}

type Option func(*App)

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

func New(assetsFS fs.FS, opts ...Option) *App {
	if assetsFS == nil {
		panic(runtime.ErrAssetsFSRequired)
	}

	app := &App{
		assetsFS: assetsFS,
		config:   types.PageConfig{Route: "/"},
		isDev:    runtime.IsDev(),
		maxAge:   time.Duration(assets.DefaultMaxAge) * time.Second,
		render:   component.Render,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func WithTitle(title string) Option {
	return func(a *App) { types.WithTitle(title)(&a.config) }
}

func WithLang(lang string) Option {
	return func(a *App) { types.WithLang(lang)(&a.config) }
}

func WithStylesheet(href string) Option {
	return func(a *App) { types.WithStylesheet(href)(&a.config) }
}

func WithRoute(route string) Option {
	return func(a *App) { types.WithRoute(route)(&a.config) }
}

func WithDev(isDev bool) Option {
	return func(a *App) { a.isDev = isDev }
}

func WithMaxAge(maxAge time.Duration) Option {
	return func(a *App) { a.maxAge = maxAge }
}

func WithErrorLog(errorLog *log.Logger) Option {
	return func(a *App) { a.errorLog = errorLog }
}

// Config returns a copy of the page configuration.
func (a *App) Config() PageConfig {
	return a.config
}

// RenderPage returns the full HTML document for the banner page.
func (a *App) RenderPage() (string, error) {
	return page.Render(a.render, a.config)
}

// Wrap mounts the banner page on api and serves assets in front of it.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("banner: nil router passed to Wrap; use app.Handler()")
	}

	api.Handle(a.config.Route, page.NewHandler(a.render, a.config, a.isDev, a.errorLog))

	return a.assetHandler(api)
}

func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	return a.Wrap(r)
}

func (a *App) assetHandler(next http.Handler) http.Handler {
	files := assets.NewHandler(a.assetsFS, int(a.maxAge/time.Second))

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" && assets.Exists(a.assetsFS, req.URL.Path) {
			files.ServeHTTP(w, req)
			return
		}
		next.ServeHTTP(w, req)
	})
}
