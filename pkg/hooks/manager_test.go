package hooks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/mcget/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndExecuteHook(t *testing.T) {
	manager := hooks.NewHookManager()
	ctx := hooks.HookContext{
		VersionID: "1.20.4",
		Vars: map[string]interface{}{
			"testVar": "testValue",
		},
	}

	tests := []struct {
		name    string
		hook    hooks.Hook
		wantErr error
	}{
		{
			name: "valid hooks",
			hook: hooks.Hook{
				Type:    hooks.PreAcquire,
				Content: `// Simple hooks that doesn't return anything`,
			},
		},
		{
			name: "empty hook type",
			hook: hooks.Hook{
				Type:    "",
				Content: "test content",
			},
			wantErr: hooks.ErrHookTypeEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := manager.AddHook(tt.hook)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, manager.HasHook(tt.hook.Type))
			assert.NoError(t, manager.Execute(tt.hook.Type, ctx))
		})
	}
}

func TestRemoveHook(t *testing.T) {
	manager := hooks.NewHookManager()
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PostNatives, Content: "// noop"}))
	require.True(t, manager.HasHook(hooks.PostNatives))

	require.NoError(t, manager.RemoveHook(hooks.PostNatives))
	assert.False(t, manager.HasHook(hooks.PostNatives))

	assert.ErrorIs(t, manager.RemoveHook(""), hooks.ErrHookTypeEmpty)
}

func TestLoadHooksFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-acquire.tengo"), []byte("// pre"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post-natives.tengo"), []byte("// post"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unknown-type.tengo"), []byte("// skip"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("skip"), 0644))

	manager := hooks.NewHookManager()
	require.NoError(t, hooks.LoadHooksFromDir(manager, dir))

	assert.True(t, manager.HasHook(hooks.PreAcquire))
	assert.True(t, manager.HasHook(hooks.PostNatives))
	assert.False(t, manager.HasHook(hooks.PostAcquire))
	assert.False(t, manager.HasHook(hooks.HookType("unknown-type")))
}

func TestLoadHooksFromDir_MissingDir(t *testing.T) {
	manager := hooks.NewHookManager()
	assert.NoError(t, hooks.LoadHooksFromDir(manager, filepath.Join(t.TempDir(), "absent")))
}
