// Package app wires the web server together: configuration, logging, the
// report service and the HTTP router, plus graceful startup and shutdown.
package app
