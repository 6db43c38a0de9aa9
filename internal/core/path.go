package core

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPath       = errors.New("path cannot be empty")
	ErrRelativePath    = errors.New("path must start with /")
	ErrPathQuery       = errors.New("path cannot contain query string")
	ErrPathFragment    = errors.New("path cannot contain fragment")
	ErrPathTraversal   = errors.New("path cannot contain parent directory references")
	ErrPathIsDirectory = errors.New("path cannot end with /")
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// ValidateAssetPath checks a site-absolute asset reference such as
// "/images/a.png".
func ValidateAssetPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if !strings.HasPrefix(path, "/") {
		return ErrRelativePath
	}

	if strings.Contains(path, "?") {
		return ErrPathQuery
	}

	if strings.Contains(path, "#") {
		return ErrPathFragment
	}

	if strings.Contains(path, "..") {
		return ErrPathTraversal
	}

	if strings.HasSuffix(path, "/") {
		return ErrPathIsDirectory
	}

	return nil
}

// FSPath turns a validated asset reference into an fs.FS name.
func FSPath(path string) string {
	return strings.TrimPrefix(path, "/")
}
