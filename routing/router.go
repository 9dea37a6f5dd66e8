// Package routing wraps chi with Laravel-style helpers and connects HTTP
// handling to the IoC container: controllers are registered under abstract
// identifiers and resolved per request.
package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kgw94/go-liteflare/framework/container"
	gohttp "github.com/kgw94/go-liteflare/http"
)

// Handler is implemented by controllers resolved out of the container.
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// HandlerFunc adapts a plain function to Handler, so a Factory binding can
// return one directly.
type HandlerFunc func(w http.ResponseWriter, r *http.Request)

func (f HandlerFunc) Handle(w http.ResponseWriter, r *http.Request) { f(w, r) }

// Router wraps chi.Router with Laravel-style helpers.
type Router struct {
	mux chi.Router
	app *container.Container
}

// New creates a Router with sane defaults (Logger, Recoverer) backed by
// the given container.
func New(app *container.Container) *Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	return &Router{mux: r, app: app}
}

// ── HTTP verbs ───────────────────────────────────────────────────────────────

func (r *Router) Get(pattern string, h http.HandlerFunc)    { r.mux.Get(pattern, h) }
func (r *Router) Post(pattern string, h http.HandlerFunc)   { r.mux.Post(pattern, h) }
func (r *Router) Put(pattern string, h http.HandlerFunc)    { r.mux.Put(pattern, h) }
func (r *Router) Patch(pattern string, h http.HandlerFunc)  { r.mux.Patch(pattern, h) }
func (r *Router) Delete(pattern string, h http.HandlerFunc) { r.mux.Delete(pattern, h) }

// ── Container-resolved controllers ───────────────────────────────────────────

// GetService routes GET pattern to the controller bound under abstract.
// The controller is resolved from the container on every request, so
// transient bindings get a fresh instance per hit while singletons are
// shared — exactly the binding's declared lifecycle.
//
//	// Laravel: Route::get('/notes', [NoteController::class, 'index'])
//	r.GetService("/notes", "NotesController")
func (r *Router) GetService(pattern, abstract string) {
	r.service(http.MethodGet, pattern, abstract)
}

// PostService routes POST pattern to the controller bound under abstract.
func (r *Router) PostService(pattern, abstract string) {
	r.service(http.MethodPost, pattern, abstract)
}

// DeleteService routes DELETE pattern to the controller bound under abstract.
func (r *Router) DeleteService(pattern, abstract string) {
	r.service(http.MethodDelete, pattern, abstract)
}

func (r *Router) service(method, pattern, abstract string) {
	r.mux.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)

		instance, err := r.app.Get(abstract)
		if err != nil {
			res.ResolutionFailure(err)
			return
		}
		h, ok := instance.(Handler)
		if !ok {
			res.ServerError("Controller [" + abstract + "] does not handle requests.")
			return
		}
		h.Handle(w, req)
	}))
}

// ── Groups & Prefixes ────────────────────────────────────────────────────────

// Group creates an inline group — Laravel: Route::group([], fn)
func (r *Router) Group(fn func(r *Router)) {
	r.mux.Group(func(mx chi.Router) {
		fn(&Router{mux: mx, app: r.app})
	})
}

// Prefix creates a sub-router with a URL prefix — Laravel: Route::prefix('/api')
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx, app: r.app})
	})
}

// ── Middleware ───────────────────────────────────────────────────────────────

// Middleware adds one or more middleware to the router.
func (r *Router) Middleware(mw ...func(http.Handler) http.Handler) {
	r.mux.Use(mw...)
}

// ── Params ───────────────────────────────────────────────────────────────────

// Param extracts a URL param — equivalent to $request->route('id')
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ── Serve ────────────────────────────────────────────────────────────────────

// ServeHTTP implements http.Handler so Router can be passed to http.ListenAndServe.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
