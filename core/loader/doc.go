// Package loader registers HTTP features with the Fiber application.
//
// Each feature implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps registration order and skips disabled features, so the
// history endpoints only appear when run history is configured.
package loader
