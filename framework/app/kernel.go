// Package app bootstraps a LiteFlare application: one container per
// process, with config, logger, and router registered as the core
// singletons before any user services.
package app

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kgw94/go-liteflare/framework/config"
	"github.com/kgw94/go-liteflare/framework/container"
	"github.com/kgw94/go-liteflare/framework/logging"
	"github.com/kgw94/go-liteflare/routing"
)

// Application is the top-level application object. It embeds the IoC
// container so user code can call app.Register(), app.Get(), and
// app.DefineType() directly — exactly like $app in Laravel's bootstrap.
type Application struct {
	*container.Container
}

// New creates an application and registers the core framework singletons.
// Nothing is resolved yet; the first Get on each name builds it.
func New(envFiles ...string) *Application {
	c := container.New()
	a := &Application{Container: c}

	c.RegisterSingleton("config", container.Factory(func(_ *container.Container, _ ...any) (any, error) {
		return config.Load(envFiles...), nil
	}))

	c.RegisterSingleton("logger", container.Factory(func(c *container.Container, _ ...any) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, "config")
		if err != nil {
			return nil, err
		}
		return logging.New(cfg.App.Env), nil
	}))

	c.RegisterSingleton("router", container.Factory(func(c *container.Container, _ ...any) (any, error) {
		return routing.New(c), nil
	}))

	return a
}

// Config resolves the "config" singleton.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container, "config")
}

// Log resolves the "logger" singleton.
func (a *Application) Log() *zap.Logger {
	return container.MustResolve[*zap.Logger](a.Container, "logger")
}

// Router resolves the "router" singleton.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Container, "router")
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

// Run starts the HTTP server on APP_PORT.
func (a *Application) Run() error {
	cfg := a.Config()
	addr := ":" + cfg.App.Port
	a.Log().Info("liteflare serving",
		zap.String("app", cfg.App.Name),
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env))
	return http.ListenAndServe(addr, a.Router())
}
