package github

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acikdeniz/credits/internal/adapter/github/mock"
	"github.com/acikdeniz/credits/internal/app"
)

func TestMetaStoreRoundTrip(t *testing.T) {
	t.Parallel()

	kv := mock.NewKVStore(nil)
	store := NewMetaStore(kv, "acikdeniz", "planner")

	meta, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, meta)

	saved := app.FetchMeta{
		ETag:      `"etag1"`,
		FetchedAt: time.Unix(1600000000, 0),
	}
	require.NoError(t, store.Save(saved))

	meta, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, saved.ETag, meta.ETag)
	assert.True(t, saved.FetchedAt.Equal(meta.FetchedAt))

	assert.NotNil(t, kv.Data("meta/acikdeniz/planner"))
}

func TestMetaStoreErrors(t *testing.T) {
	t.Parallel()

	kv := mock.NewKVStore(nil)
	kv.ReadErr = errors.New("read error")
	kv.UpdateErr = errors.New("update error")
	store := NewMetaStore(kv, "acikdeniz", "planner")

	_, err := store.Load()
	assert.Error(t, err)

	err = store.Save(app.FetchMeta{ETag: `"etag1"`, FetchedAt: time.Now()})
	assert.Error(t, err)
}

func TestMetaStoreLoadMalformedData(t *testing.T) {
	t.Parallel()

	kv := mock.NewKVStore(map[string][]byte{
		"meta/acikdeniz/planner": []byte("not json"),
	})
	store := NewMetaStore(kv, "acikdeniz", "planner")

	_, err := store.Load()
	assert.Error(t, err)
}
