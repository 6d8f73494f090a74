// Package models defines the domain entities exchanged with the myFlix API.
//
// The package contains two categories of types:
//
// 1. Catalog entities, read-only from the client's point of view
//   - [Movie] : a catalog entry with nested [Genre] and [Director]
//   - [Catalog] : a named movie list with favorite ids, used for export
//
// 2. Account entities
//   - [User] : an account record including its ordered favorite movie ids
//   - [Credentials] : the login request body
//   - [UserDetails] : the registration and profile update request body
//   - [LoginResult] : the login response carrying the bearer token
//
// JSON field names follow the API, which mixes capitalized and lowercase keys.
// Decoding is lenient: unknown fields are ignored and missing fields stay zero.
package models
