package artifact

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acikdeniz/credits/internal/app"
)

func TestStoreWrite(t *testing.T) {
	t.Parallel()

	dir, err := ioutil.TempDir("", "artifact")
	require.NoError(t, err)
	path := filepath.Join(dir, FileName)

	store := NewStore(path)
	require.NoError(t, store.Write([]app.Contributor{
		{
			Login:      "a",
			ProfileURL: "https://github.com/a",
		},
		{
			Login:      "b",
			ProfileURL: "https://github.com/b",
		},
	}))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "username": "a",
    "profileUrl": "https://github.com/a"
  },
  {
    "username": "b",
    "profileUrl": "https://github.com/b"
  }
]
`
	assert.Equal(t, want, string(data))

	// Leftover temp files would mean a failed rename.
	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestStoreWriteOverwrites(t *testing.T) {
	t.Parallel()

	dir, err := ioutil.TempDir("", "artifact")
	require.NoError(t, err)
	path := filepath.Join(dir, FileName)

	store := NewStore(path)
	require.NoError(t, store.Write([]app.Contributor{
		{
			Login:      "a",
			ProfileURL: "https://github.com/a",
		},
	}))
	require.NoError(t, store.Write([]app.Contributor{
		{
			Login:      "b",
			ProfileURL: "https://github.com/b",
		},
	}))

	loader := NewFileLoader(path)
	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []app.Contributor{
		{
			Login:      "b",
			ProfileURL: "https://github.com/b",
		},
	}, got)
}

func TestStoreWriteMissingDir(t *testing.T) {
	t.Parallel()

	store := NewStore("/nonexistent-dir-for-sure/contributors.json")
	err := store.Write([]app.Contributor{
		{
			Login:      "a",
			ProfileURL: "https://github.com/a",
		},
	})
	assert.Error(t, err)
}

func TestStoreAndFileLoaderRoundTrip(t *testing.T) {
	t.Parallel()

	dir, err := ioutil.TempDir("", "artifact")
	require.NoError(t, err)
	path := filepath.Join(dir, FileName)

	contributors := []app.Contributor{
		{
			Login:      "acikdeniz",
			ProfileURL: "https://github.com/acikdeniz",
		},
		{
			Login:      "a",
			ProfileURL: "https://github.com/a",
		},
	}

	store := NewStore(path)
	require.NoError(t, store.Write(contributors))

	loader := NewFileLoader(path)
	got, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, contributors, got)
}
