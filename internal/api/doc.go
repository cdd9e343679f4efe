// Package api provides the HTTP REST API for the blog backend.
//
// It exposes account signup, credential login, and token-protected
// identity endpoints under /api/v1, plus an unauthenticated health check.
//
// The server follows the same lifecycle pattern as other infrastructure
// components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api
