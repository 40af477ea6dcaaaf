// Package middleware provides the inbound HTTP pipeline shared by the HTML
// pages and the JSON API. Handlers registered on the router run inside:
//
//	Recovery → RequestID → SecurityHeaders → OpenTelemetry → Logging → Timeout → Handler
//
// Recovery and Timeout answer API requests (paths under /api/) with problem
// JSON and page requests with plain text.
package middleware
