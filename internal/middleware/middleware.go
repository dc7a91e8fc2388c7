// Package middleware holds the Echo middleware shared by every route:
// request IDs, request-scoped loggers, New Relic tracing, the global error
// handler, Clerk authentication for the back office and the inquiry rate
// limiter.
package middleware
