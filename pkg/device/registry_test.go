package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/wire"
)

func TestEntityRegistry(t *testing.T) {
	r := NewEntityRegistry()
	assert.Zero(t, r.Len())

	keys := []uint32{7, 3, 1000, 42}
	for i, key := range keys {
		idx, err := r.Register(wire.EntitySwitch, key, "e")
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}

	t.Run("BijectiveMapping", func(t *testing.T) {
		require.Equal(t, len(keys), r.Len())
		for i := range r.Len() {
			info, ok := r.Lookup(i)
			require.True(t, ok)
			assert.Equal(t, i, info.Index)
			idx, ok := r.IndexOf(info.Key)
			require.True(t, ok)
			assert.Equal(t, i, idx)
		}
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		_, err := r.Register(wire.EntityLight, 3, "again")
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Equal(t, len(keys), r.Len())
		info, _ := r.Lookup(1)
		assert.Equal(t, wire.EntitySwitch, info.Type)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, ok := r.Lookup(-1)
		assert.False(t, ok)
		_, ok = r.Lookup(len(keys))
		assert.False(t, ok)
		_, ok = r.IndexOf(5)
		assert.False(t, ok)
	})

	t.Run("EntitiesIsCopy", func(t *testing.T) {
		all := r.Entities()
		all[0].Name = "changed"
		info, _ := r.Lookup(0)
		assert.Equal(t, "e", info.Name)
	})
}
