package framewire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsBitLayout(t *testing.T) {
	var f Flags
	f.SetEndian(LittleEndian)
	f.SetChecksumEnabled(true)
	f.SetTimestampEnabled(true)
	f.SetCompression(2)
	f.SetEncryption(3)
	f.SetStrictMode(true)

	assert.Equal(t, LittleEndian, f.Endian())
	assert.True(t, f.ChecksumEnabled())
	assert.True(t, f.TimestampEnabled())
	assert.EqualValues(t, 2, f.Compression())
	assert.EqualValues(t, 3, f.Encryption())
	assert.True(t, f.StrictMode())

	f.SetChecksumEnabled(false)
	assert.False(t, f.ChecksumEnabled())
	assert.True(t, f.StrictMode(), "unrelated bits must not be disturbed")
}

func TestHeaderSentinels(t *testing.T) {
	var h Header
	assert.False(t, h.HasVersion())
	assert.False(t, h.HasChecksum())
	assert.False(t, h.HasTimestamp())
	h.ID = NoID
	assert.False(t, h.HasID())
	h.ID = 3
	assert.True(t, h.HasID())
}

func TestHeaderMarshalRoundTrip(t *testing.T) {
	w, err := NewWriter(HeaderSize, 0, LittleEndian)
	assert := assert.New(t)
	assert.NoError(err)
	var flags Flags
	flags.SetEndian(LittleEndian)
	flags.SetChecksumEnabled(true)
	h := Header{Checksum: 123, ID: 7, Version: 2, Flags: flags, BodySize: 99, Timestamp: 1000}
	assert.NoError(h.marshal(w))
	assert.Len(w.data, HeaderSize)

	r, err := NewReader(w.data, LittleEndian)
	assert.NoError(err)
	got, err := unmarshalHeader(r)
	assert.NoError(err)
	assert.Equal(h, got)
}
