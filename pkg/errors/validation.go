package errors

import (
	"os"
	"strings"
	"unicode"
)

// RequireFile returns a FILE_NOT_FOUND error unless path names an existing
// regular file. what is used in the message ("input", "manifest", ...).
func RequireFile(what, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return New(ErrCodeFileNotFound, "%s not found: %s", what, path)
	}
	if !info.Mode().IsRegular() {
		return New(ErrCodeFileNotFound, "%s is not a regular file: %s", what, path)
	}
	return nil
}

// RequireDir returns a FILE_NOT_FOUND error unless path names an existing
// directory.
func RequireDir(what, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return New(ErrCodeFileNotFound, "%s not found: %s", what, path)
	}
	return nil
}

// ValidateFileName validates a bare output file name for safety.
// It ensures the name is a simple basename without path components, so it can
// be joined under an output directory without escaping it.
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators")
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "file name cannot be %q", name)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid characters")
		}
	}

	return nil
}
