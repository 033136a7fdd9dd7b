// Package restcountries is a small client for the public REST Countries API.
//
// Two endpoints are used: the collection (/all) and the lookup by alpha code
// (/alpha/{code}). Requests are unauthenticated and never retried. Failures
// surface as one of three error kinds:
//
//   - transport errors, wrapped with %w
//   - [*StatusError] for a non-2xx answer; the message carries the status code
//   - [*DecodeError] when the body is not the expected JSON
//
// A lookup that decodes to an empty list yields [*NotFoundError].
package restcountries
