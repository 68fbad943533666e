// Package middleware groups the Fiber middleware of the HTTP API.
//
//   - auth: API key check (X-API-Key header or api_key query parameter).
//   - rayid: per-request id stored in locals and echoed in X-Ray-ID.
package middleware
