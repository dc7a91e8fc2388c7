// Package errs defines the error shapes the API returns to clients.
//
// Every failed request is answered with the same envelope:
//
//	{ "success": false, "code": "...", "message": "...", "errors": [...] }
//
// Field validation failures carry only "success" and "errors", so clients
// that match on the validator's messages see exactly that pair.
package errs
