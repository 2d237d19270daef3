package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	t.Run("orders endpoints on construction", func(t *testing.T) {
		i := NewInterval(0.8, 0.2)
		require.Equal(t, 0.2, i.Min())
		require.Equal(t, 0.8, i.Max())
		require.InDelta(t, 0.6, i.Width(), 1e-12)
	})

	t.Run("strict ordering", func(t *testing.T) {
		require.True(t, NewInterval(1.0, 1.1).Less(NewInterval(1.2, 1.3)))
		require.False(t, NewInterval(1.2, 1.3).Less(NewInterval(1.0, 1.1)))
		require.True(t, NewInterval(1.2, 1.3).Greater(NewInterval(1.0, 1.1)))
	})

	t.Run("touching intervals overlap", func(t *testing.T) {
		require.True(t, NewInterval(1.0, 1.1).Overlaps(NewInterval(1.1, 1.3)))
		require.False(t, NewInterval(1.0, 1.1).Overlaps(NewInterval(1.2, 1.3)))
	})
}
