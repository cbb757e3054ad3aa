// Package http implements the HTTP transport of the authentication service.
//
// It exposes the eight authentication commands as JSON POST endpoints under
// a configurable base route, plus /api/version/ and /metrics. Every command
// runs inside one transaction scope. Session tokens are read from the
// session cookie or the "Authorization: Bearer" header and written back
// through both. Request tracing, access logging, per-IP rate limiting of
// the public endpoints and the error to status mapping live here as well.
package http
