// Package zap provides a go.uber.org/zap backed implementation of the log
// package's Logger interface, with OpenTelemetry trace correlation pulled
// from the request context.
package zap
