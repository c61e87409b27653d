// Package schedule implements the calendar availability and resolution
// engine: parsing of caller-supplied date/time literals, free-slot scanning
// over a busy-interval set, keyword lookup of upcoming events, conflict
// checking for proposed times, and event creation.
//
// The engine is stateless. Every operation is a single request/response
// transaction against a Gateway (the remote calendar provider boundary);
// all interval arithmetic happens locally after at most one gateway round
// trip. Operations are safe to call concurrently.
//
// Faults are reported as *Error values carrying a machine-checkable Kind,
// so callers can branch on the kind of failure instead of matching message
// text. A lookup or scan that finds nothing is a normal result, not an
// error.
package schedule
