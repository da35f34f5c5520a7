// Package account issues bearer tokens to registered users.
//
// Service.Register normalizes the email, hashes the password with the
// password package and stores the user; Service.Login verifies the stored
// hash. Both return a Session whose token is signed by the injected Issuer
// (a *jwt.Codec in production). Unknown emails and wrong passwords are
// indistinguishable to callers: both yield ErrInvalidCredentials.
//
// Two Storage implementations are provided: MemoryStorage for development
// and tests, and PostgresStorage over pgx with the schema in Migrations.
package account
