// Package httpserver runs the application's HTTP listener with graceful,
// signal-aware shutdown and a JSON healthcheck endpoint aggregating
// dependency probes.
package httpserver
