package geometry

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentAccess(t *testing.T) {
	v := NewVector3(1, 2, 3)
	p := NewPoint3(4, 5, 6)

	for i, want := range []float64{1, 2, 3} {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for i, want := range []float64{4, 5, 6} {
		got, err := p.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, p.Len())
}

func TestComponentSet(t *testing.T) {
	v := NewVector3(1, 2, 3)
	require.NoError(t, v.SetAt(0, -1))
	require.NoError(t, v.SetAt(2, 9))
	assert.Equal(t, NewVector3(-1, 2, 9), v)

	p := NewPoint3(0, 0, 0)
	require.NoError(t, p.SetAt(1, 7))
	assert.Equal(t, NewPoint3(0, 7, 0), p)
}

func TestComponentIndexOutOfRange(t *testing.T) {
	v := NewVector3(1, 2, 3)
	p := NewPoint3(1, 2, 3)

	for _, i := range []int{3, -1, 42} {
		_, err := v.At(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = p.At(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		assert.ErrorIs(t, v.SetAt(i, 0), ErrIndexOutOfRange)
		assert.ErrorIs(t, p.SetAt(i, 0), ErrIndexOutOfRange)

		var ie *IndexError
		_, err = v.At(i)
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, i, ie.Index)
	}

	assert.Equal(t, NewVector3(1, 2, 3), v, "failed sets must not change components")
	assert.Equal(t, NewPoint3(1, 2, 3), p)
}

func TestIterationOrder(t *testing.T) {
	v := NewVector3(7, 8, 9)

	assert.Equal(t, []float64{7, 8, 9}, slices.Collect(v.All()))
	// a fresh iteration starts at x again
	assert.Equal(t, []float64{7, 8, 9}, slices.Collect(v.All()))

	for c := range NewPoint3(1, 2, 3).All() {
		assert.Equal(t, 1.0, c)
		break
	}
}

func TestEquality(t *testing.T) {
	assert.True(t, NewVector3(1, 2, 3).Equal(NewVector3(1, 2, 3)))
	assert.False(t, NewVector3(1, 2, 3).Equal(NewVector3(1, 2, 3.0000001)))
	assert.True(t, NewPoint3(1, 2, 3).Equal(NewPoint3(1, 2, 3)))
	assert.False(t, NewPoint3(1, 2, 3).Equal(NewPoint3(0, 2, 3)))
}

func TestCopyIsIndependent(t *testing.T) {
	v := NewVector3(1, 2, 3)
	c := v.Copy()
	require.NoError(t, c.SetAt(0, 100))
	c.Scale(2)
	assert.Equal(t, NewVector3(1, 2, 3), v)

	p := NewPoint3(1, 2, 3)
	pc := p.Copy()
	require.NoError(t, pc.SetAt(2, -3))
	assert.Equal(t, NewPoint3(1, 2, 3), p)
}

func TestArrayRoundTrip(t *testing.T) {
	a := [3]float64{1.5, -2, 3}

	assert.Equal(t, a, Vector3FromArray(a).Array())
	assert.Equal(t, a, Point3FromArray(a).Array())
}

func TestPointVectorConversion(t *testing.T) {
	start := NewPoint3(1, 1, 0)
	end := NewPoint3(1, 1, 300)

	d := end.Vector().Sub(start.Vector())
	assert.Equal(t, NewVector3(0, 0, 300), d)
	assert.Equal(t, end, start.Vector().Add(d).Point())
	assert.Equal(t, "Point3: <1, 1, 300>", end.String())
}
