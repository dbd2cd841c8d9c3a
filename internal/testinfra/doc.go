// Package testinfra starts disposable dependencies for integration tests.
//
// Everything here is behind the `integration` build tag and needs Docker:
//
//	go test -tags integration ./...
package testinfra
