// Package opc handles the structural round trip of ZIP-based Office
// document packages (OPC containers: .xlsm, .xlam, .docm, ...).
//
// This package handles:
//   - Extracting a package into a scratch directory tree for inspection
//     and mutation
//   - Rebuilding a package deterministically from a directory tree, with
//     an atomic replace so a crash never leaves a half-written archive
//   - Scoped Workspace management: one ephemeral extracted copy per
//     operation, cleaned up on every exit path
//
// The package uses the standard library archive/zip; it is not a general
// ZIP library, only the operations the ribbon round trip needs.
package opc
