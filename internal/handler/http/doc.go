// Package http implements the REST API of the cols tracker.
//
// It wires the chi router, the request handlers and the middleware chain:
// panic recovery, trace ids, access logging, compression, CORS, rate
// limiting, Prometheus metrics and JWT authentication. Handlers take the
// user id from the verified token only, never from the request body.
package http
