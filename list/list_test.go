package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values[T any](l *List[T]) []T {
	var out []T
	for current := l.sentinel.next; current != nil; current = current.next {
		out = append(out, current.item)
	}
	return out
}

func requireConsistent[T any](t *testing.T, l *List[T]) {
	t.Helper()
	require.Equal(t, l.Size(), l.SizeRecursive())
	require.Len(t, values(l), l.Size())
}

func TestNewIsEmpty(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 0, l.SizeRecursive())
	assert.Equal(t, "[]", l.String())

	_, err := l.GetFirst()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.GetLast()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestZeroValueIsEmpty(t *testing.T) {
	var l List[string]
	_, err := l.GetFirst()
	require.ErrorIs(t, err, ErrEmpty)

	l.AddLast("a")
	first, err := l.GetFirst()
	require.NoError(t, err)
	assert.Equal(t, "a", first)
	requireConsistent(t, &l)
}

func TestNewWith(t *testing.T) {
	l := NewWith(42)
	assert.Equal(t, 1, l.Size())
	assert.Equal(t, 1, l.SizeRecursive())

	first, err := l.GetFirst()
	require.NoError(t, err)
	assert.Equal(t, 42, first)

	last, err := l.GetLast()
	require.NoError(t, err)
	assert.Equal(t, 42, last)
}

func TestAddFirstAddLast(t *testing.T) {
	l := New[int]()
	l.AddFirst(3)
	l.AddLast(7)
	l.AddFirst(1)

	assert.Equal(t, []int{1, 3, 7}, values(l))
	assert.Equal(t, "[1 3 7]", l.String())
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, 3, l.SizeRecursive())

	first, err := l.GetFirst()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	last, err := l.GetLast()
	require.NoError(t, err)
	assert.Equal(t, 7, last)
}

func TestEmptyErrorNamesOperation(t *testing.T) {
	l := New[float64]()
	_, err := l.GetFirst()
	assert.EqualError(t, err, "GetFirst: list is empty")
	_, err = l.GetLast()
	assert.EqualError(t, err, "GetLast: list is empty")
}

var ops = []struct {
	name  string
	front []bool // true: AddFirst, false: AddLast
}{
	{name: "none", front: nil},
	{name: "front only", front: []bool{true, true, true}},
	{name: "back only", front: []bool{false, false, false, false}},
	{name: "alternating", front: []bool{true, false, true, false, true}},
	{name: "back then front", front: []bool{false, false, true}},
	{name: "single front", front: []bool{true}},
	{name: "single back", front: []bool{false}},
}

func TestSizeTracksAdds(t *testing.T) {
	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			for i, front := range tt.front {
				if front {
					l.AddFirst(i)
					got, err := l.GetFirst()
					require.NoError(t, err)
					require.Equal(t, i, got)
				} else {
					l.AddLast(i)
					got, err := l.GetLast()
					require.NoError(t, err)
					require.Equal(t, i, got)
				}
				require.Equal(t, i+1, l.Size())
				requireConsistent(t, l)
			}
		})
	}
}

func TestReadsDoNotMutate(t *testing.T) {
	l := New[string]()
	for _, w := range []string{"one", "two", "three"} {
		l.AddLast(w)
	}
	for i := 0; i < 5; i++ {
		first, err := l.GetFirst()
		require.NoError(t, err)
		last, err := l.GetLast()
		require.NoError(t, err)
		assert.Equal(t, "one", first)
		assert.Equal(t, "three", last)
		assert.Equal(t, 3, l.Size())
		assert.Equal(t, 3, l.SizeRecursive())
	}
	assert.Equal(t, []string{"one", "two", "three"}, values(l))
}

func TestInstancesKeepOwnSize(t *testing.T) {
	a := New[int]()
	b := NewWith(0)
	a.AddFirst(1)
	a.AddLast(2)
	b.AddLast(1)
	c := New[int]()

	assert.Equal(t, 2, a.Size())
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, 0, c.Size())
	requireConsistent(t, a)
	requireConsistent(t, b)
	requireConsistent(t, c)
}

type point struct{ x, y int }

func TestStructElements(t *testing.T) {
	l := NewWith(point{1, 2})
	l.AddLast(point{3, 4})
	last, err := l.GetLast()
	require.NoError(t, err)
	assert.Equal(t, point{3, 4}, last)
	assert.Equal(t, "[{1 2} {3 4}]", l.String())
}

var gsize int

func BenchmarkAddFirst(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := New[int]()
		for j := 0; j < 1000; j++ {
			l.AddFirst(j)
		}
		gsize = l.Size()
	}
}

func BenchmarkAddLast(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := New[int]()
		for j := 0; j < 1000; j++ {
			l.AddLast(j)
		}
		gsize = l.Size()
	}
}

func BenchmarkSizeRecursive(b *testing.B) {
	l := New[int]()
	for j := 0; j < 1000; j++ {
		l.AddFirst(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gsize = l.SizeRecursive()
	}
}
