// Package services implements [MovieService], the gateway between the views and the myFlix REST API.
//
// # Client
//
// [Client] turns each operation into exactly one HTTP request against the configured base URL.
// All operations share one request wrapper parameterized by operation, method, path, whether
// the call needs credentials, and an optional JSON body.
//
// Authenticated calls are sent through an [oauth2.Transport] backed by the session store. The
// token is read on every request and an empty token is still attached; the client never
// refuses a call locally.
//
// Register and Login are sent without an Authorization header.
//
// # Error Handling
//
// A transport failure or non-2xx status is logged once with the operation, status code and
// raw body, then returned as a [*RequestError]. A 2xx whose body is not the expected JSON is
// still a success and yields a zero result.
//
// For a [*RequestError]:
//   - Error() is the per-operation message, ready for display
//   - errors.Is(err, [shared.ErrAPIRequest]) holds for every failure
//   - a 400 from Register embeds the server's explanation in the message
//
// # Raw Requests
//
// [Client.Raw] sends an arbitrary request and returns an [APIResponse] regardless of status.
// It backs the api passthrough commands.
package services
