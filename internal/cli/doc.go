// Package cli provides the interactive donapoint command-line client.
//
// It wires configuration, the local token store, the REST gateway, the
// session manager, and an interactive REPL. Typical flow: restore a
// persisted session, show the prompt, and execute user commands.
//
// Key features:
//   - Login with a third-party identity token / Logout
//   - List donation points with free-text and verified-only filtering
//   - Show a single point, nearest-first ordering when a location is set
//   - Create points (with optional image) and update them
//   - Profile management and creator verification
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
