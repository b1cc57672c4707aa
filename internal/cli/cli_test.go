package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(BuildInfo{Version: "test", Commit: "abc", BuildTime: "now"})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestExec_ListOnFreshStoreIsEmpty(t *testing.T) {
	out, _, err := execute(t, "exec", "quote list")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestExec_AddProducesNoOutput(t *testing.T) {
	out, _, err := execute(t, "exec", `quote "hello"`)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExec_InvalidCommand(t *testing.T) {
	_, _, err := execute(t, "exec", "quote banana")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidCommand(err))
}

func TestExec_PigLatin(t *testing.T) {
	_, _, err := execute(t, "exec", `quote piglatin"test"`)
	require.Error(t, err)
	assert.True(t, domain.IsNotImplemented(err))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quotebook test")
	assert.Contains(t, out, "abc")
}

func TestBuildApp_WiresEverything(t *testing.T) {
	var out, errOut bytes.Buffer

	a, err := buildApp("", BuildInfo{Version: "test"}, &out, &errOut)
	require.NoError(t, err)

	assert.NotNil(t, a.Config)
	assert.NotNil(t, a.Dispatcher)
	assert.NotNil(t, a.Recorder)
	assert.Equal(t, &errOut, a.ErrOut)
}

func TestBuildApp_RejectsInvalidProfileConfig(t *testing.T) {
	t.Setenv("QUOTEBOOK_LOG_LEVEL", "shouting")

	_, err := buildApp("", BuildInfo{}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}
