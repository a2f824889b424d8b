// Package log defines the logging interface and typed logging fields used
// across the service.
//
// Adapters (such as the zap package) implement Logger so application code
// stays backend-neutral.
package log
