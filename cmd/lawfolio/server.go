// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/temotunadze/lawfolio/internal/config"
	"github.com/temotunadze/lawfolio/internal/contact"
	"github.com/temotunadze/lawfolio/internal/content"
	"github.com/temotunadze/lawfolio/internal/db"
	"github.com/temotunadze/lawfolio/internal/handlers"
	"github.com/temotunadze/lawfolio/internal/middleware"
	"github.com/temotunadze/lawfolio/internal/session"
	"github.com/temotunadze/lawfolio/internal/tls"
	"github.com/temotunadze/lawfolio/internal/ui"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the Lawfolio HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		if err := initContentDB(); err != nil {
			return err
		}

		portfolio, err := content.Load(db.GetDB(), logger.Named("content"))
		if err != nil {
			return fmt.Errorf("failed to load content: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, portfolio)
	},
}

func runServer(ctx context.Context, portfolio *content.Portfolio) error {
	gin.SetMode(gin.ReleaseMode)

	store := session.NewStore(session.StoreConfig{
		Session: session.Options{
			Links: portfolio.NavbarLinks(),
			Nav: ui.NavOptions{
				ScrollThreshold: config.GetInt("ui.navbar_scroll_threshold"),
				Breakpoint:      config.GetInt("ui.breakpoint"),
			},
			ScrollTopThreshold: config.GetInt("ui.scroll_top_threshold"),
			Contact: contact.Options{
				SubmitDelay: config.GetDuration("contact.submit_delay"),
				ResetDelay:  config.GetDuration("contact.reset_delay"),
				Logger:      logger.Named("contact"),
			},
		},
		IdleTTL:       config.GetDuration("session.idle_ttl"),
		SweepInterval: config.GetDuration("session.sweep_interval"),
		Logger:        logger.Named("session"),
	})
	store.Start()
	defer store.Close()

	tokens, err := session.NewTokens(config.GetString("session.secret"), config.GetDuration("session.idle_ttl"))
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.capacity"), config.GetDuration("ratelimit.interval"))
	defer limiter.Stop()

	tlsEnabled := config.GetBool("server.tls_enabled")
	httpsPort := config.GetString("server.https_port")

	r := handlers.NewRouter(handlers.Config{
		Portfolio:   portfolio,
		Sessions:    store,
		Tokens:      tokens,
		Logger:      logger.Named("http"),
		RateLimiter: limiter,
		Palette:     config.GetString("theme.palette"),
		DarkMode:    config.GetBool("theme.dark_mode"),
		AssetsDir:   config.GetString("assets.dir"),
		BlockedIPs:  config.GetStringSlice("security.blocked_ips"),
		TLSEnabled:  tlsEnabled,
		HTTPSPort:   httpsPort,
	})

	baseDomain := config.GetString("server.base_domain")
	httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
	servers := []*http.Server{{Addr: httpAddr, Handler: r}}

	if tlsEnabled {
		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load TLS config: %w", err)
		}
		tlsManager, err := tls.NewManager(tlsCfg, logger.Named("tls"))
		if err != nil {
			return fmt.Errorf("failed to initialize TLS manager: %w", err)
		}
		if err := tlsManager.Manage(ctx); err != nil {
			return err
		}
		servers[0].Handler = tlsManager.HTTPHandler(r)

		servers = append(servers, &http.Server{
			Addr:      fmt.Sprintf(":%s", httpsPort),
			Handler:   r,
			TLSConfig: tlsManager.GetTLSConfig(),
		})
	}

	errs := make(chan error, len(servers))
	for _, srv := range servers {
		// Bind first so a port error is reported before we claim to be up
		listener, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			shutdown(servers)
			return fmt.Errorf("failed to bind %s: %w", srv.Addr, err)
		}

		secure := srv.TLSConfig != nil
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.Bool("tls", secure),
			zap.String("base_domain", baseDomain),
		)

		go func(srv *http.Server, listener net.Listener) {
			var err error
			if srv.TLSConfig != nil {
				err = srv.ServeTLS(listener, "", "")
			} else {
				err = srv.Serve(listener)
			}
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- fmt.Errorf("server %s failed: %w", srv.Addr, err)
			}
		}(srv, listener)
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdown(servers)
		return nil
	case err := <-errs:
		shutdown(servers)
		return err
	}
}

func shutdown(servers []*http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("server shutdown", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
