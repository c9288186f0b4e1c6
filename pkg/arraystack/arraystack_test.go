package arraystack

import (
	"slices"
	"testing"

	"github.com/i5heu/GoCourseLab/pkg/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ container.Stack[int] = (*ArrayStack[int])(nil)
	_ container.Bounded    = (*ArrayStack[int])(nil)
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		s, err := New[int](c)
		require.ErrorIs(t, err, container.ErrInvalidCapacity)
		assert.Nil(t, s)
	}
}

func TestPushPopReversesOrder(t *testing.T) {
	const n = 8
	s, err := New[int](n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		require.NoError(t, s.Push(i))
	}
	for i := n - 1; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, s.Len())
}

func TestPushBeyondCapacityLeavesContents(t *testing.T) {
	s, err := New[int](3)
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}

	before := slices.Collect(s.All())
	require.ErrorIs(t, s.Push(4), container.ErrFull)
	assert.Equal(t, before, slices.Collect(s.All()))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, uint64(0), s.FreeSlots())
}

func TestPopEmpty(t *testing.T) {
	s, err := New[int](2)
	require.NoError(t, err)

	v, err := s.Pop()
	require.ErrorIs(t, err, container.ErrEmpty)
	assert.Zero(t, v)

	_, err = s.Peek()
	require.ErrorIs(t, err, container.ErrEmpty)

	// still usable afterwards
	require.NoError(t, s.Push(-1))
	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, -1, v)
}

func TestAllIsTopToBottomAndRestartable(t *testing.T) {
	s, err := New[string](4)
	require.NoError(t, err)
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, s.Push(v))
	}

	want := []string{"c", "b", "a"}
	assert.Equal(t, want, slices.Collect(s.All()))
	assert.Equal(t, want, slices.Collect(s.All()))

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "c", top)
	assert.Equal(t, uint64(3), s.UsedSlots())
	assert.Equal(t, uint64(1), s.FreeSlots())

	// early break
	for v := range s.All() {
		assert.Equal(t, "c", v)
		break
	}
}
