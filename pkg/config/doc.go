// Package config loads typed configuration structs from environment
// variables, with optional .env support for development.
//
// Each subsystem declares its own Config struct with `env:` tags and loads it
// independently; successfully loaded types are cached so repeated loads are
// cheap and consistent across the process.
//
// # Usage
//
//	type Config struct {
//	    Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//	    JWTSecret string `env:"JWT_SECRET,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // a required variable is missing or unparsable
//	}
//
// Required variables make misconfiguration a startup failure rather than a
// runtime surprise: the caller is expected to exit non-zero on error.
package config
