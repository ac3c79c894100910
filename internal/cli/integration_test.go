package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/manify/internal/cli"
)

func TestGenerateEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "bstrlib.txt")
	doc := "The functions\n-------------\n\n" +
		"extern bstring bfromcstr (const char * str);\n\n" +
		"Creates a bstring from a C string.\n\n" +
		"=====\n"
	require.NoError(t, os.WriteFile(input, []byte(doc), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"generate", "-i", input, "-o", dir, "--color", "never"})

	require.NoError(t, cmd.Execute())

	// Aggregate page and per-symbol page on disk.
	assert.FileExists(t, filepath.Join(dir, "bstrlib.3"))
	assert.FileExists(t, filepath.Join(dir, "man3", "bfromcstr.3"))

	// Summary names the symbol.
	assert.Contains(t, out.String(), "bfromcstr")
}

func TestGenerateQuiet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(input, []byte("One paragraph.\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"generate", "-i", input, "-o", dir, "--quiet"})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestGenerateMissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"generate", "-i", filepath.Join(dir, "absent.txt"), "-o", dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
}

func TestGenerateExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(input, []byte("One paragraph.\n"), 0644))

	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("name: mylib\nsection: 5\n"), 0644))

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"generate", "--config", cfgPath, "-i", input, "-o", dir, "--quiet",
	})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "mylib.5"))
}

func TestGenerateMissingExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"generate", "--config", filepath.Join(dir, "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeForError(err))
}
