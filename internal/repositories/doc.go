// Package repositories implements SQLite persistence for client-side state.
//
// Key Implementations:
//   - [SessionRepository] : key/value entries backing the persisted session
//
// Values are stored as plaintext, matching the exposure of browser local storage.
package repositories
