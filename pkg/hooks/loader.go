package hooks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/mcget/pkg/errors"
)

// HookFileExtensions lists the supported hook file extensions.
var HookFileExtensions = map[string]bool{
	".tengo": true,
}

// LoadHooksFromDir loads every recognized hook script from a directory,
// one file per hook type: <dir>/<hook-type>.tengo. A missing directory is
// not an error; nothing is loaded.
func LoadHooksFromDir(manager HookManager, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hook directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if _, ok := HookFileExtensions[ext]; !ok {
			continue // Skip unsupported file types
		}

		hookName := strings.TrimSuffix(entry.Name(), ext)
		hookType := HookType(hookName)

		switch hookType {
		case PreAcquire, PostAcquire, PostNatives:
			// Valid hook type
		default:
			continue // Skip unknown hook types
		}

		hookPath := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(hookPath)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", hookPath, errors.ErrHookLoad, err)
		}

		if err := manager.AddHook(Hook{
			Type:    hookType,
			Content: string(content),
		}); err != nil {
			return errors.Wrapf(err, "error adding hook %s", hookName)
		}
	}

	return nil
}
