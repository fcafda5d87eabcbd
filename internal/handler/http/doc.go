// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, and
// access logging are handled in this package before requests are delegated to
// the service layer.
//
// Identity flows one way: the auth middleware parses the bearer token and
// stores the principal's user ID in the request context; each handler reads
// it back exactly once and passes it to the service layer as an explicit
// argument. Nothing below this package touches the request context for
// identity.
package http
