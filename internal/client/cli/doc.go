// Package cli provides the interactive vidhub command-line client.
//
// It wires configuration, local storage, the REST API client and the
// application services, then runs a REPL over them. The stored session is
// restored in the background while the prompt is already usable; commands
// that need a signed-in viewer say so until it completes.
//
// Key features:
//   - Login / Register / Logout, whoami
//   - Listings: home (by category), history, watch later, liked, channels
//   - Watch a video, browse its comments and expand replies in place
//   - Comment, reply, like comments and videos
//   - Profile, avatar and cover updates
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
