// Package logger builds the zap logger used across lb-status.
//
// Development level (debug) gets zap's development config, everything else
// the production config at the requested level. The console format prints
// colored levels without stack traces; json is meant for log shippers.
//
// WithRayID attaches the request's ray id to a logger inside Fiber handlers.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Report written", zap.String("path", path))
package logger
