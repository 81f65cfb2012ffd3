package framewire

import (
	"testing"
	"testing/quick"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/framewire/pkg/container"
)

func TestStringWorkedExample(t *testing.T) {
	w, err := NewWriter(16, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteString("hi"))
	assert.Equal(t, []byte{2, 0, 0, 0, 0, 0, 0, 0, 'h', 'i'}, w.data)

	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestOptionalWorkedExamples(t *testing.T) {
	w, err := NewWriter(16, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, WriteOptional[int32](w, nil, (*Writer).WriteInt32))
	var v int32 = 42
	require.NoError(t, WriteOptional(w, &v, (*Writer).WriteInt32))
	assert.Equal(t, []byte{0x00, 0x01, 0x2A, 0x00, 0x00, 0x00}, w.data)

	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	nothing, err := ReadOptional(r, (*Reader).ReadInt32)
	require.NoError(t, err)
	assert.Nil(t, nothing)
	present, err := ReadOptional(r, (*Reader).ReadInt32)
	require.NoError(t, err)
	require.NotNil(t, present)
	assert.Equal(t, int32(42), *present)
}

func TestVectorWorkedExample(t *testing.T) {
	w, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, WriteVector(w, []int32{1, 2, 3}, (*Writer).WriteInt32))
	assert.Len(t, w.data, 20)

	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	got, err := ReadVector(r, (*Reader).ReadInt32)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestVariantIndexRejectsOutOfRange(t *testing.T) {
	w, err := NewWriter(8, 0, LittleEndian)
	require.NoError(t, err)
	err = WriteVariantIndex(w, 5, 3)
	require.ErrorIs(t, err, ErrInvalidVariantIndex)
}

func TestVariantIndexRoundTrip(t *testing.T) {
	w, err := NewWriter(8, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, WriteVariantIndex(w, 1, 3))
	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	idx, err := ReadVariantIndex(r, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, idx)

	r2, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	_, err = ReadVariantIndex(r2, 1)
	require.ErrorIs(t, err, ErrInvalidVariantIndex)
}

func TestSetToleratesDuplicateWireElements(t *testing.T) {
	w, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, WriteVector(w, []int32{7, 7, 7}, (*Writer).WriteInt32))
	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	s, err := ReadSet[int32](r, (*Reader).ReadInt32)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(7))
}

func TestMapFirstWriteWinsOnDuplicateKey(t *testing.T) {
	w, err := NewWriter(64, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteSize(2))
	require.NoError(t, w.WriteString("k"))
	require.NoError(t, w.WriteInt32(1))
	require.NoError(t, w.WriteString("k"))
	require.NoError(t, w.WriteInt32(2))

	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	m, err := ReadMap(r, (*Reader).ReadString, (*Reader).ReadInt32)
	require.NoError(t, err)
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, int32(1), v)
}

func TestOrderedSetEncodesAscending(t *testing.T) {
	s := container.NewOrderedSet[int32]()
	s.Add(3)
	s.Add(1)
	s.Add(2)
	w, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, WriteOrderedSet(w, s, (*Writer).WriteInt32))
	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	got, err := ReadVector(r, (*Reader).ReadInt32)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestFixedArrayHasNoCountPrefix(t *testing.T) {
	w, err := NewWriter(16, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, WriteFixedArray(w, []int32{9, 9, 9}, (*Writer).WriteInt32))
	assert.Len(t, w.data, 12)
}

func TestWideString16RoundTripAndSurrogatePair(t *testing.T) {
	s := "hi \U0001F600" // contains a non-BMP emoji
	w, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteWideString16(s))

	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	got, err := r.ReadWideString16()
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// sanity: the emoji needs a surrogate pair in UTF-16 (the wire itself
	// carries UTF-8).
	runes := utf16.Encode([]rune(s))
	assert.True(t, utf16.IsSurrogate(rune(runes[len(runes)-2])))
}

func TestWideString16HasSameWireShapeAsString(t *testing.T) {
	w, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteWideString16("hi"))

	w2, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w2.WriteString("hi"))
	assert.Equal(t, w2.data, w.data)
}

func TestWideString16RejectsUTF8EncodedSurrogateOnDecode(t *testing.T) {
	w, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteSize(3))
	require.NoError(t, w.writeBytes([]byte{0xED, 0xA0, 0x80})) // UTF-8-encoded lone high surrogate U+D800

	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	_, err = r.ReadWideString16()
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReadVectorRejectsCountExceedingRemainingBytes(t *testing.T) {
	w, err := NewWriter(16, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteSize(1<<40)) // declared count far exceeds any data actually present

	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	_, err = ReadVector(r, (*Reader).ReadInt32)
	require.ErrorIs(t, err, ErrBufferUnderflow)
}

func TestWideString32RoundTrip(t *testing.T) {
	s := "café \U0001F600"
	w, err := NewWriter(32, 0, LittleEndian)
	require.NoError(t, err)
	require.NoError(t, w.WriteWideString32(s))
	r, err := NewReader(w.data, LittleEndian)
	require.NoError(t, err)
	got, err := r.ReadWideString32()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestStringQuickRoundTrip(t *testing.T) {
	f := func(s string) bool {
		w, err := NewWriter(len(s)+16, 0, LittleEndian)
		require.NoError(t, err)
		require.NoError(t, w.WriteString(s))
		r, err := NewReader(w.data, LittleEndian)
		require.NoError(t, err)
		got, err := r.ReadString()
		require.NoError(t, err)
		return got == s
	}
	require.NoError(t, quick.Check(f, nil))
}
