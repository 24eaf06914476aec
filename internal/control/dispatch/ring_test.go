package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ja-he/homecmd/internal/control/dispatch"
)

func TestRing(t *testing.T) {
	t.Run("clamps capacity", func(t *testing.T) {
		assert.Equal(t, 1, dispatch.NewRing[int](0).Cap())
		assert.Equal(t, 1, dispatch.NewRing[int](-5).Cap())
		assert.Equal(t, 4, dispatch.NewRing[int](4).Cap())
	})

	t.Run("push evicts oldest", func(t *testing.T) {
		r := dispatch.NewRing[string](2)

		_, evicted := r.Push("a")
		assert.False(t, evicted)
		_, evicted = r.Push("b")
		assert.False(t, evicted)

		dropped, evicted := r.Push("c")
		assert.True(t, evicted)
		assert.Equal(t, "a", dropped)
		assert.Equal(t, []string{"b", "c"}, r.Items())
	})

	t.Run("pop from tail", func(t *testing.T) {
		r := dispatch.NewRing[int](3)
		for i := 1; i <= 5; i++ {
			r.Push(i)
		}

		v, ok := r.Pop()
		assert.True(t, ok)
		assert.Equal(t, 5, v)
		assert.Equal(t, []int{3, 4}, r.Items())

		r.Push(6)
		assert.Equal(t, []int{3, 4, 6}, r.Items())

		r.Pop()
		r.Pop()
		r.Pop()
		_, ok = r.Pop()
		assert.False(t, ok)
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.Items())
	})
}
