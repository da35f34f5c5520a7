// Package account mounts the token issuance endpoints:
//
//	POST /auth/register  {email, password, name}  201 {token, subject_id, email, name}
//	POST /auth/login     {email, password}        200 {token, subject_id, email, name}
//	GET  /auth/me        (bearer token)           200 {id, email, name, created_at}
//
// Errors are {"message": ...} bodies. /auth/me sits behind authgate, so an
// absent or invalid token is rejected before the service is touched.
package account
