// Package api contains the client-side gateway to the donation-point
// REST backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     whole backend surface: creator login/profile/verification, point
//     listing, detail, creation (multipart with optional image) and update,
//     plus the admin creator endpoints.
//  2. A concrete resty implementation (see RESTClient) that attaches the
//     bearer token and a request id to every call, fires a hook on 401 so
//     the session can be cleared in one place, and maps responses to
//     sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrForbidden, ErrNotFound. Backend
// validation rejections are returned as *APIError carrying the server's
// detail message verbatim, so views can show it to the user unchanged.
//
// Concurrency & Contexts
//
// RESTClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation/timeouts.
package api
