// Package fileops provides fallible file operations over a billy filesystem.
//
// Every operation takes a trailing *fallible.Slot: supplying a slot captures
// failures for local inspection, passing nil raises them to the nearest
// fallible.Catch boundary. Each operation documents the fault kinds it
// produces and its no-result sentinel.
//
// Operations accept any billy.Filesystem, so they run identically against
// memfs.New() in tests and osfs.New(...) in real use.
package fileops

import "github.com/jmgilman/fallible/fault"

// Fault kinds produced by this package's operations. Declared here, as part
// of the package contract, and registered with descriptors at init.
const (
	// KindDirectoryAlreadyExists indicates the target path is already
	// occupied by a file or directory. Detail: "path".
	KindDirectoryAlreadyExists fault.Kind = "DIRECTORY_ALREADY_EXISTS"

	// KindNotFound indicates the requested path does not exist.
	// Detail: "path".
	KindNotFound fault.Kind = "NOT_FOUND"

	// KindValidationFailure indicates the payload failed validation.
	// Detail: "problems", the list of violations found.
	KindValidationFailure fault.Kind = "VALIDATION_FAILURE"
)
