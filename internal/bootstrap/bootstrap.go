// Package bootstrap assembles the portal gateway: config, session store,
// upstream clients, flows, handlers and the HTTP server.
package bootstrap

import (
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/carelink/portal-gateway/internal/authflow"
	"github.com/carelink/portal-gateway/internal/config"
	"github.com/carelink/portal-gateway/internal/content"
	"github.com/carelink/portal-gateway/internal/logger"
	"github.com/carelink/portal-gateway/internal/registration"
	"github.com/carelink/portal-gateway/internal/security"
	"github.com/carelink/portal-gateway/internal/session"
	"github.com/carelink/portal-gateway/internal/transport/http/handlers"
	"github.com/carelink/portal-gateway/internal/transport/http/nav"
	"github.com/carelink/portal-gateway/internal/transport/http/router"
	"github.com/carelink/portal-gateway/internal/upstream"
)

// NewServer wires the whole gateway and returns the server plus a cleanup
// function for held connections.
func NewServer() (*http.Server, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var sessions session.Store
	if cfg.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL)
		cleanup = func() { _ = rdb.Close() }
		logger.Log.Info().Str("addr", cfg.RedisAddr).Msg("sessions in redis")
	} else {
		sessions = session.NewMemoryStore()
		logger.Log.Info().Msg("sessions in memory")
	}

	redirector := nav.Redirector{}

	primaryGW := upstream.NewPrimary(cfg.BackendURL, upstream.DefaultGatewayConfig(), sessions, redirector)
	contentGW := upstream.NewContent(cfg.ContentURL, upstream.DefaultGatewayConfig())

	primary := upstream.NewPrimaryClient(primaryGW)
	posts := upstream.NewContentClient(contentGW)

	flow := authflow.NewService(primary, sessions, redirector)
	workflows := registration.NewWorkflows(primary, redirector, cfg.SessionTTL)
	verifiers := registration.NewVerifiers(cfg.SessionTTL)
	articles := content.NewService(posts)

	codec := security.NewCookieCodec(cfg.CookieSecret, "portal-gateway", cfg.SessionTTL, cfg.CookieSecure)

	handler, err := router.New(router.Deps{
		Pages:    handlers.NewPages(flow),
		Auth:     handlers.NewAuth(flow),
		Register: handlers.NewRegister(workflows, verifiers),
		Care:     handlers.NewCare(primary, flow),
		Content:  handlers.NewContent(articles),
		Health:   handlers.NewHealth(),
		Cookies:  codec,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, cleanup, nil
}
