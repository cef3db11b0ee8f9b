// Package ports holds the interfaces the board's layers meet at.
// ProjectService is what the HTTP handlers drive, BoardClient is what the
// boardctl commands drive, and the health interfaces back readiness.
// Generated mocks for all of them live in the top-level mocks package.
package ports

//go:generate sh -c "cd ../.. && go tool mockery"
