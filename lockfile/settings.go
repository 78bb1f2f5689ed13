package lockfile

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/chenasraf/lockfix/utils"
	"github.com/samber/lo"
)

// DefaultNames are looked up when no settings file names any lockfile.
var DefaultNames = []string{utils.BUN_LOCK}

// -----------------------------
// Settings model
// -----------------------------
type Settings struct {
	// "lockfix.lockfiles": file names (relative to the project root) to fix
	// when no path is passed on the command line.
	Lockfiles []string `json:"lockfix.lockfiles"`
}

// -----------------------------
// Public entry point
// -----------------------------

// LockfileNames returns the lockfile names configured in (1) the workspace
// .vscode/settings.json, then (2) the user settings.json. DefaultNames is
// returned when neither sets a usable list.
func LockfileNames(root string) []string {
	// 1) Workspace settings
	if names, ok := readWorkspaceLockfiles(root); ok {
		return names
	}
	// 2) User settings
	if names, ok := readUserLockfiles(); ok {
		return names
	}
	return append([]string(nil), DefaultNames...)
}

// -----------------------------
// Workspace settings
// -----------------------------

func readWorkspaceLockfiles(root string) ([]string, bool) {
	path := filepath.Join(root, utils.VSCODE_DIR, utils.SETTINGS)
	return readLockfilesFromFile(path)
}

// -----------------------------
// User settings (Code / Insiders / VSCodium)
// -----------------------------

func readUserLockfiles() ([]string, bool) {
	for _, p := range userSettingsCandidates() {
		if names, ok := readLockfilesFromFile(p); ok {
			return names, true
		}
	}
	return nil, false
}

func userSettingsCandidates() []string {
	var dirs []string
	products := []string{"Code", "Code - Insiders", "VSCodium"}
	under := func(base string) []string {
		return lo.Map(products, func(p string, _ int) string {
			return filepath.Join(base, p, "User", utils.SETTINGS)
		})
	}

	switch runtime.GOOS {
	case "darwin":
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs, under(filepath.Join(home, "Library", "Application Support"))...)
		}
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dirs = append(dirs, under(xdg)...)
		}
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs, under(filepath.Join(home, ".config"))...)
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			dirs = append(dirs, under(appData)...)
		}
	default:
		// Fallback: try common Linux layout
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs, filepath.Join(home, ".config", "Code", "User", utils.SETTINGS))
		}
	}

	return dirs
}

// -----------------------------
// File loader
// -----------------------------

func readLockfilesFromFile(path string) ([]string, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var s Settings
	if err := utils.UnmarshalJsonc(b, &s); err != nil {
		return nil, false
	}

	names := normalizeNames(s.Lockfiles)
	if len(names) == 0 {
		return nil, false
	}
	return names, true
}

func normalizeNames(names []string) []string {
	names = lo.Map(names, func(n string, _ int) string {
		return filepath.FromSlash(strings.TrimSpace(n))
	})
	return lo.Uniq(lo.Compact(names))
}
