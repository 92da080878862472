package rixio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferTextRoundTrip(t *testing.T) {
	var b Buffer

	b.SetString("hello")
	require.Equal(t, 5, b.Len())
	require.False(t, b.Empty())
	assert.Equal(t, "hello", b.String())

	b.AppendString(" world")
	assert.Equal(t, "hello world", b.String())

	b.Clear()
	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())
}

func TestBufferConstructors(t *testing.T) {
	t.Run("sized is zero filled", func(t *testing.T) {
		b := NewBuffer(4)
		require.Equal(t, 4, b.Len())
		assert.Equal(t, []byte{0, 0, 0, 0}, b.Bytes())
	})

	t.Run("from bytes copies", func(t *testing.T) {
		src := []byte{0x01, 0x02}
		b := NewBufferBytes(src)
		src[0] = 0xFF
		assert.Equal(t, []byte{0x01, 0x02}, b.Bytes())
	})

	t.Run("from string", func(t *testing.T) {
		b := NewBufferString("abc")
		assert.Equal(t, "abc", b.String())
	})
}

func TestBufferSetCopies(t *testing.T) {
	b := NewBufferString("previous content")

	src := []byte{0xAA, 0xBB}
	b.Set(src)
	src[1] = 0x00

	assert.Equal(t, []byte{0xAA, 0xBB}, b.Bytes())
}

func TestBufferResize(t *testing.T) {
	b := NewBufferString("abc")

	t.Run("grow zero fills", func(t *testing.T) {
		b.Resize(5)
		assert.Equal(t, []byte{'a', 'b', 'c', 0, 0}, b.Bytes())
	})

	t.Run("shrink truncates", func(t *testing.T) {
		b.Resize(2)
		assert.Equal(t, "ab", b.String())
	})

	t.Run("regrow within capacity zero fills stale bytes", func(t *testing.T) {
		b.Resize(4)
		assert.Equal(t, []byte{'a', 'b', 0, 0}, b.Bytes())
	})

	t.Run("negative length panics", func(t *testing.T) {
		assert.Panics(t, func() { b.Resize(-1) })
	})
}

func TestBufferIndexing(t *testing.T) {
	b := NewBufferBytes([]byte{0x01, 0x02})

	t.Run("unchecked in range", func(t *testing.T) {
		assert.Equal(t, byte(0x01), b.Byte(0))
		assert.Equal(t, byte(0x02), b.Byte(1))
	})

	t.Run("unchecked out of range panics", func(t *testing.T) {
		assert.Panics(t, func() { _ = b.Byte(2) })
	})

	t.Run("checked in range", func(t *testing.T) {
		v, err := b.At(1)
		require.NoError(t, err)
		assert.Equal(t, byte(0x02), v)
	})

	t.Run("checked out of range", func(t *testing.T) {
		_, err := b.At(2)
		require.ErrorIs(t, err, ErrOutOfRange)

		_, err = b.At(-1)
		require.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBufferClearRetainsCapacity(t *testing.T) {
	b := NewBufferString("some longer content to allocate")
	before := b.Cap()

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.True(t, b.Empty())
	assert.Equal(t, before, b.Cap())
}
