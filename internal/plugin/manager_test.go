package plugin_test

import (
	"errors"
	"testing"

	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name    string
	initErr error
	log     *[]string
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Initialize(plugin.EditorAPI) error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Shutdown() error {
	*r.log = append(*r.log, "shutdown "+r.name)
	return nil
}

func TestLifecycleOrder(t *testing.T) {
	var log []string
	m := plugin.NewManager()
	require.NoError(t, m.Register(&recorder{name: "a", log: &log}))
	require.NoError(t, m.Register(&recorder{name: "b", log: &log, initErr: errors.New("boom")}))
	require.NoError(t, m.Register(&recorder{name: "c", log: &log}))

	m.InitializePlugins(plugintest.New())
	m.ShutdownPlugins()

	assert.Equal(t, []string{
		"init a", "init b", "init c",
		"shutdown c", "shutdown b", "shutdown a",
	}, log)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	var log []string
	m := plugin.NewManager()
	require.NoError(t, m.Register(&recorder{name: "a", log: &log}))

	err := m.Register(&recorder{name: "a", log: &log})
	assert.ErrorIs(t, err, plugin.ErrDuplicate)
	assert.Error(t, m.Register(&recorder{log: &log}))

	p, ok := m.GetPlugin("a")
	require.True(t, ok)
	assert.Equal(t, "a", p.Name())
}

func TestCommands(t *testing.T) {
	m := plugin.NewManager()
	called := 0
	fn := func([]string) error { called++; return nil }

	require.NoError(t, m.RegisterCommand("wc", fn))
	assert.ErrorIs(t, m.RegisterCommand("wc", fn), plugin.ErrDuplicate)
	assert.Error(t, m.RegisterCommand("two words", fn))
	assert.Error(t, m.RegisterCommand("nil", nil))

	got, ok := m.Command("wc")
	require.True(t, ok)
	require.NoError(t, got(nil))
	assert.Equal(t, 1, called)
	assert.Equal(t, []string{"wc"}, m.CommandNames())

	var none *plugin.Manager
	_, ok = none.Command("wc")
	assert.False(t, ok)
}
