// Package auth provides authentication and authorisation for the blog backend.
//
// It implements the credential and token core behind the HTTP layer:
//   - Argon2id password hashing (PHC string format, per-call random salt)
//   - Stateless JWT identity tokens (HS256, configurable TTL)
//   - A username-keyed credential store contract backed by SQLite
//   - Signup/login orchestration with reason-coded outcomes
//   - Resolution of a stored comma-separated authority string into
//     ROLE_-prefixed authority grants
//
// Expected negative outcomes (taken username, bad credentials) are values,
// not errors: signup reports a reason code, login returns the single
// ErrInvalidCredentials regardless of which factor failed. Store faults
// propagate unchanged. There is no server-side session state - a token's
// validity is a pure function of the secret key and the clock.
package auth
