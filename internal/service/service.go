// Package service contains the business side of the intake gateway.
//
// It receives validated payloads from the handlers and hands them to the
// back office through the submission queue.
package service
