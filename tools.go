//go:build tools

package tools

// This file documents the CLI tools the repository relies on.
// It is not compiled into any binary.
//
//   - github.com/pressly/goose/v3/cmd/goose: pinned through the `tool`
//     directive in go.mod; run with `go tool goose -dir migrations/postgres ...`.
//     insightctl migrate wraps the same embedded migrations.
//   - github.com/matryer/moq: regenerates the *_mock_test.go / mocks_test.go
//     files; see the go:generate lines in the package tests.
