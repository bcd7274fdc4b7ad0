// Package logger builds configured slog.Logger instances.
//
// Output format and level come from the environment by default, so production
// gets JSON for log aggregation while development keeps readable text. Static
// attributes (service name, environment) can be attached once at construction.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.NewFromConfig(cfg, logger.WithAttr(slog.String("service", "partstock")))
//	log.Info("server starting", "addr", ":8080")
package logger
