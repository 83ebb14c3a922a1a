// Package config loads typed configuration structs from environment
// variables using github.com/caarlos0/env field tags, with optional .env
// bootstrap via godotenv.
//
// Each infrastructure package declares its own Config struct (see pg.Config,
// httpserver.Config) and the binary loads them at startup with MustLoad.
// Parsing is cached per type, so shared configuration stays consistent no
// matter how many components load it.
package config
