// Package http provides the HTTP transport layer: chi routing, request
// validation and RFC 7807 error responses for the reporting API consumed by
// the web dashboard.
package http
