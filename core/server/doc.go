// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the API key protecting the
// endpoints and the timeout of on-demand reports. The start command builds
// the Fiber application from it.
package server
