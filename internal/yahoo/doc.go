// Package yahoo provides a read-only client for the Yahoo Finance public
// endpoints.
//
// Endpoints used:
//   - GET /v7/finance/quote?symbols=...   (current quote + company metadata)
//   - GET /v8/finance/chart/{symbol}      (OHLCV history)
//
// Requests are unauthenticated by default; if a token is configured it is
// sent as a Bearer Authorization header.
package yahoo
