// Package server runs the API's HTTP listener.
//
// It owns startup, signal handling and graceful shutdown.
package server
