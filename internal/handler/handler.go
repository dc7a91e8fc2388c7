// Package handler holds the Echo handlers of the intake API and the generic
// pipeline that validates every request before a handler sees it.
package handler
