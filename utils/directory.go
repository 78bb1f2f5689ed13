package utils

import (
	"errors"
	"os"
	"path"
	"path/filepath"

	"github.com/samber/lo"
)

const (
	VSCODE_DIR   = ".vscode"
	SETTINGS     = "settings.json"
	PACKAGE_JSON = "package.json"
	BUN_LOCK     = "bun.lock"
)

// rootMarkers are the entries that make a directory a project root.
var rootMarkers = []string{BUN_LOCK, PACKAGE_JSON, VSCODE_DIR}

func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if cwd == "/" || cwd == "\\" || len(cwd) <= 2 {
		return "", errors.New("no project root found")
	}
	return FindProjectRootFrom(cwd)
}

func FindProjectRootFrom(p string) (string, error) {
	if isProjectRoot(p) {
		if real, err := filepath.EvalSymlinks(p); err == nil {
			return real, nil
		}
		return p, nil
	}
	parent, err := getParentDir(p)
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(parent)
}

func isProjectRoot(p string) bool {
	return lo.SomeBy(rootMarkers, func(m string) bool {
		full := path.Join(p, m)
		if m == VSCODE_DIR {
			return DirExists(full)
		}
		return FileExists(full)
	})
}

func getParentDir(p string) (string, error) {
	if p == "/" || p == "\\" || len(p) <= 2 {
		return "", errors.New("no parent directory")
	}
	return path.Dir(p), nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory.
func DirExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}
