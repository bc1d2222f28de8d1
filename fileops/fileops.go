package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/fallible"
	"github.com/jmgilman/fallible/fault"
)

// MaxPayload is the largest payload UpdateData accepts, in bytes.
const MaxPayload = 1 << 20

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// CreateUniqueFile creates the named file with the given contents, creating
// parent directories as needed. The create is exclusive: a path already
// occupied by a file or directory is a failure, never an overwrite.
//
// Returns the normalized path of the created file; "" is the no-result
// sentinel in capture mode.
//
// Kinds: KindDirectoryAlreadyExists (path occupied; detail "path").
func CreateUniqueFile(fsys billy.Filesystem, path string, data []byte, dst *fallible.Slot) string {
	fallible.Arm(dst)

	path = normalize(path)

	if _, err := fsys.Stat(path); err == nil {
		fallible.Report(dst, fault.WithDetail(
			fault.New(KindDirectoryAlreadyExists, "path already occupied"), "path", path))
		return ""
	} else if !os.IsNotExist(err) {
		fallible.Report(dst, fault.From(err))
		return ""
	}

	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			fallible.Report(dst, fault.From(err))
			return ""
		}
	}

	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		// Lost the race between Stat and the exclusive open.
		if os.IsExist(err) {
			fallible.Report(dst, fault.WithDetail(
				fault.New(KindDirectoryAlreadyExists, "path already occupied"), "path", path))
			return ""
		}
		fallible.Report(dst, fault.From(err))
		return ""
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = fsys.Remove(path)
		fallible.Report(dst, fault.From(err))
		return ""
	}
	if err := f.Close(); err != nil {
		_ = fsys.Remove(path)
		fallible.Report(dst, fault.From(err))
		return ""
	}

	return path
}

// UpdateData validates the payload and stores it at the named path.
//
// The payload must be non-empty, valid UTF-8, and at most MaxPayload bytes.
// Storage delegates to CreateUniqueFile on this call's own channel, so the
// inner create's kinds are part of this operation's contract: callers
// constraining a slot must admit them too.
//
// Returns the number of bytes written; 0 is the no-result sentinel in
// capture mode.
//
// Kinds: KindValidationFailure (detail "problems"),
// KindDirectoryAlreadyExists (detail "path").
func UpdateData(fsys billy.Filesystem, path string, data []byte, dst *fallible.Slot) int {
	fallible.Arm(dst)

	if problems := validatePayload(data); len(problems) > 0 {
		fallible.Report(dst, fault.WithDetailMap(
			fault.New(KindValidationFailure, "payload rejected"),
			map[string]interface{}{"problems": problems}))
		return 0
	}

	if CreateUniqueFile(fsys, path, data, dst) == "" {
		// Capture mode: dst holds the inner failure. In raise mode control
		// never reaches here.
		return 0
	}
	return len(data)
}

// ReadData returns the contents of the named file.
//
// Returns nil as the no-result sentinel in capture mode.
//
// Kinds: KindNotFound (path does not exist; detail "path").
func ReadData(fsys billy.Filesystem, path string, dst *fallible.Slot) []byte {
	fallible.Arm(dst)

	path = normalize(path)

	data, err := util.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			fallible.Report(dst, fault.WithDetail(
				fault.Wrap(err, KindNotFound, "no data at path"), "path", path))
			return nil
		}
		fallible.Report(dst, fault.From(err))
		return nil
	}
	return data
}

// Replace writes data to the named path, replacing any existing contents.
//
// It is a conventional (error-returning) helper for callers that captured a
// collision from CreateUniqueFile or UpdateData and decided to overwrite.
// The write is atomic: data goes to a temporary file which is then renamed
// over the target.
func Replace(fsys billy.Filesystem, path string, data []byte) error {
	path = normalize(path)

	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create parent directory: %w", err)
		}
	}

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	tmpFile, err := fsys.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	// Rename to final path (atomic on POSIX systems)
	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// validatePayload returns the list of problems with data, empty when valid.
func validatePayload(data []byte) []string {
	var problems []string
	if len(data) == 0 {
		problems = append(problems, "payload is empty")
	}
	if len(data) > MaxPayload {
		problems = append(problems, fmt.Sprintf("payload exceeds %d bytes", MaxPayload))
	}
	if len(data) > 0 && !utf8.Valid(data) {
		problems = append(problems, "payload is not valid UTF-8")
	}
	return problems
}
