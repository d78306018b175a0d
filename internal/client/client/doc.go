// Package client talks to the video backend's REST API.
//
// # Overview
//
//  1. APIClient wraps net/http for the /api/v1 surface: users, videos,
//     comments and likes. Every request carries the stored credential as a
//     bearer token and a fresh X-Request-ID.
//  2. Responses use the backend envelope {statusCode, data, message, success};
//     only data is decoded into the caller's value.
//  3. InitDatabase opens the local SQLite file and applies the embedded goose
//     migrations.
//
// # Error Handling
//
// Failures are classified the same way for every endpoint:
//
//   - no response at all: ErrUnavailable, plus a connectivity notice;
//   - 401: the unauthorized handler runs, then *APIError (errors.Is(err,
//     ErrUnauthorized) holds);
//   - any other non-2xx: *APIError with the server message.
package client
