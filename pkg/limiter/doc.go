// Package limiter defines the contracts shared by the rate limiter
// implementations in pkg/limiter/leaky and pkg/limiter/token.
//
// Every limiter instance is a single-owner state machine: one goroutine
// owns its state and processes requests, ticks and stats queries strictly
// one at a time. The Limiter interface is what the registry and manager
// route calls through; Ticker abstracts the periodic tick source so tests
// can drive ticks deterministically.
package limiter
