package hooks_test

import (
	"testing"

	"github.com/glorpus-work/mcget/pkg/hooks"
	"github.com/stretchr/testify/assert"
)

func TestTengoExecutor(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	ctx := hooks.HookContext{
		VersionID:  "1.20.4",
		MainClass:  "net.minecraft.client.main.Main",
		Classpath:  "/store/libraries/a.jar:/store/libraries/b.jar",
		NativesDir: "/store/versions/1.20.4/natives",
		Vars: map[string]interface{}{
			"customVar": "customValue",
		},
	}

	t.Run("Execute valid script", func(t *testing.T) {
		script := `// This is a valid script that does nothing`
		executor.AddScript(hooks.PreAcquire, script)

		err := executor.Execute(hooks.PreAcquire, ctx)
		assert.NoError(t, err, "Execute should not return an error for valid script")
	})

	t.Run("Execute script with error", func(t *testing.T) {
		script := `
			non_existent_function()
		`
		executor.AddScript(hooks.PostAcquire, script)

		err := executor.Execute(hooks.PostAcquire, ctx)
		assert.Error(t, err, "Execute should return an error for invalid script")
	})

	t.Run("Execute non-existent script", func(t *testing.T) {
		err := executor.Execute("non-existent-hooks", ctx)
		assert.NoError(t, err, "Execute should not return an error for non-existent hooks")
	})

	t.Run("HasScript check", func(t *testing.T) {
		hookType := hooks.HookType("test-hooks")
		assert.False(t, executor.HasScript(hookType), "Should not have script before adding")

		executor.AddScript(hookType, "// test script")
		assert.True(t, executor.HasScript(hookType), "Should have script after adding")

		executor.RemoveScript(hookType)
		assert.False(t, executor.HasScript(hookType), "Should not have script after removal")
	})

	t.Run("Context variables are accessible", func(t *testing.T) {
		script := `
			id := versionId
			main := mainClass
			cp := classpath
			natives := nativesDir
			custom := customVar

			if id != "" && main != "" && cp != "" && natives != "" && custom != "" {
				// All variables are set, do nothing
			}
		`
		executor.AddScript(hooks.PostNatives, script)

		err := executor.Execute(hooks.PostNatives, ctx)
		assert.NoError(t, err, "Context variables should be accessible in script")
	})

	t.Run("Script error variable is surfaced", func(t *testing.T) {
		script := `err := "version " + versionId + " rejected"`
		executor.AddScript(hooks.PreAcquire, script)

		err := executor.Execute(hooks.PreAcquire, ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "1.20.4 rejected")
	})
}
