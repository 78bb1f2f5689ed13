package lockfile

import (
	"fmt"
	"path/filepath"

	"github.com/chenasraf/lockfix/utils"
	"github.com/samber/lo"
)

// Discover returns the configured lockfiles that exist under root, in the
// order they are configured. Absolute names are used as is.
func Discover(root string) []string {
	paths := lo.Map(LockfileNames(root), func(name string, _ int) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(root, name)
	})
	return lo.Filter(paths, func(p string, _ int) bool {
		return utils.FileExists(p)
	})
}

// Select picks the lockfile to fix under root. A single match is returned
// directly, several are handed to prompt (PromptForLockfile when nil).
func Select(root string, prompt func([]string) (string, error)) (string, error) {
	if prompt == nil {
		prompt = PromptForLockfile
	}
	found := Discover(root)
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no lockfile found in %s", root)
	case 1:
		return found[0], nil
	default:
		return prompt(found)
	}
}
