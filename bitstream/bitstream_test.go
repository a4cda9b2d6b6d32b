package bitstream

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_ReadBits(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x8f, 0x55}))

	type testRow struct {
		width  uint8
		expect uint32
	}

	testData := [...]testRow{
		{width: 4, expect: 0x08},
		{width: 3, expect: 0x07},
		{width: 3, expect: 0x05},
		{width: 6, expect: 0x15},
	}
	for _, row := range testData {
		actual, err := r.ReadBits(row.width)
		if err != nil {
			t.Fatalf("ReadBits(%d) failed: %v", row.width, err)
		}
		if actual != row.expect {
			t.Errorf("ReadBits(%d):\n\texpect: %#x\n\tactual: %#x", row.width, row.expect, actual)
		}
	}

	_, err := r.ReadBits(1)
	require.Equal(t, io.EOF, err)
	require.Equal(t, int64(16), r.BitsRead())
}

func TestReader_PartialFieldIsEOF(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff}))

	_, err := r.ReadBits(9)
	require.Equal(t, io.EOF, err)
}

func TestReader_Reset(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("ab")))

	first, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint32('a'), first)

	_, err = r.ReadBits(3)
	require.NoError(t, err)

	require.NoError(t, r.Reset())
	require.Equal(t, int64(0), r.BitsRead())

	again, err := r.ReadBits(16)
	require.NoError(t, err)
	require.Equal(t, uint32('a')<<8|uint32('b'), again)
}

func TestReader_ResetNotSeekable(t *testing.T) {
	r := NewReader(io.MultiReader(strings.NewReader("x")))
	err := r.Reset()
	require.True(t, errors.Is(err, ErrNotSeekable))
}

type closeRecorder struct {
	bytes.Buffer
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestWriter_PadsAndCloses(t *testing.T) {
	var out closeRecorder
	w := NewWriter(&out)

	require.NoError(t, w.WriteBits(1, 1))
	require.NoError(t, w.WriteBits(9, 0x100))
	require.NoError(t, w.WriteBits(4, 0xfff3))
	require.Equal(t, int64(14), w.BitsWritten())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	// 1 100000000 0011 00 -> 1100 0000 0000 1100
	require.Equal(t, []byte{0xc0, 0x0c}, out.Bytes())
	require.Equal(t, 1, out.closed)
}

func TestWriter_ThirtyTwoBitField(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)
	require.NoError(t, w.WriteBits(32, 0xface8201))
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0xfa, 0xce, 0x82, 0x01}, out.Bytes())

	r := NewReader(bytes.NewReader(out.Bytes()))
	tag, err := r.ReadBits(32)
	require.NoError(t, err)
	require.Equal(t, uint32(0xface8201), tag)
}
