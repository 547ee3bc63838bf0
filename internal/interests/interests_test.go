package interests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-reader/pkg/types"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	m, err := New(types.InterestsConfig{DataDir: dir})
	require.NoError(t, err)
	return m, dir
}

func TestNewRequiresDataDir(t *testing.T) {
	_, err := New(types.InterestsConfig{})
	require.Error(t, err)
}

func TestLoadBeforeSave(t *testing.T) {
	m, _ := newTestManager(t)
	in, ok := m.Load()
	assert.False(t, ok)
	assert.Nil(t, in)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	want := &types.Interests{
		Areas:      []string{"wireless communications"},
		Topics:     []string{"beamforming", "channel estimation"},
		Categories: []string{"eess.SP"},
	}
	require.NoError(t, m.Save(want))

	got, ok := m.Load()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestLoadCorruptFile(t *testing.T) {
	m, dir := newTestManager(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "interests.json"), []byte("{oops"), 0o644))

	_, ok := m.Load()
	assert.False(t, ok)
}

func TestAddCreatesFile(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AddTopic("beamforming"))

	got, ok := m.Load()
	require.True(t, ok)
	assert.Equal(t, []string{"beamforming"}, got.Topics)
}

func TestAddIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AddCategory("cs.LG"))
	require.NoError(t, m.AddCategory("cs.LG"))

	got, ok := m.Load()
	require.True(t, ok)
	assert.Equal(t, []string{"cs.LG"}, got.Categories)
}

func TestRemove(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AddArea("deep learning"))
	require.NoError(t, m.AddArea("signal processing"))
	require.NoError(t, m.RemoveArea("deep learning"))

	got, ok := m.Load()
	require.True(t, ok)
	assert.Equal(t, []string{"signal processing"}, got.Areas)
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.AddTopic("MIMO"))
	require.NoError(t, m.RemoveTopic("not there"))

	got, ok := m.Load()
	require.True(t, ok)
	assert.Equal(t, []string{"MIMO"}, got.Topics)
}

func TestEditsKeepOtherFields(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Save(&types.Interests{
		Areas:  []string{"deep learning"},
		Topics: []string{"attention"},
	}))
	require.NoError(t, m.AddCategory("cs.LG"))

	got, ok := m.Load()
	require.True(t, ok)
	assert.Equal(t, []string{"deep learning"}, got.Areas)
	assert.Equal(t, []string{"attention"}, got.Topics)
	assert.Equal(t, []string{"cs.LG"}, got.Categories)
}
