package answers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/autoui/internal/questionnaire"
)

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "answers.json"))

	a, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, a)
	assert.NotNil(t, a)
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "answers.json")
	store := NewStore(path)

	want := questionnaire.Answers{"tagline": "Ship it", "brand_tone": questionnaire.SkipSentinel}
	require.NoError(t, store.Save(want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"brand_tone\": \"__SKIP__\",\n  \"tagline\": \"Ship it\"\n}\n", string(data))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, questionnaire.ErrInput)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	a, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, a)
}

func TestStore_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	store := NewStore(path)

	// Resetting a clean state is a no-op.
	removed, err := store.Reset()
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, store.Save(questionnaire.Answers{"a": "b"}))
	removed, err = store.Reset()
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
