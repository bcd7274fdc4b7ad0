// Package mongo provides MongoDB connection management for the inventory
// backend.
//
// Configuration is entirely environment-driven so the same binary runs
// unchanged across development, staging, and production. Connection
// construction retries transient failures, and a health check function is
// exposed for readiness probes.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
//	db := client.Database("partstock")
//
// Connection failures are wrapped in package errors compatible with
// errors.Is for clean handling at the call site.
package mongo
