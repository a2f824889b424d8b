// Package server exposes the instruction pipeline over HTTP.
//
// It owns the boundary concerns the core deliberately excludes: request
// shape validation, the response envelope, access logging, panic recovery,
// and graceful shutdown.
package server
