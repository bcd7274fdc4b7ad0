// Package httpserver wraps http.Server with environment-driven configuration
// and graceful shutdown on context cancellation or SIGINT/SIGTERM.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// Run blocks until the server stops. In-flight requests get ShutdownTimeout
// to complete before the listener is torn down.
package httpserver
