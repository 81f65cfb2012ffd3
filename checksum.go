package framewire

// calculateChecksum implements the exact rolling hash the format
// specifies: seed with the body size (as int32, wrapping the same way a
// narrowing cast would), then fold in every covered byte with a base-31
// multiply-add, finally guarding against a zero result (reserved to mean
// "no checksum") by bumping it to 1. This matches Header::calculateChecksum
// in the source this was ported from byte for byte.
func calculateChecksum(bodySize uint64, data []byte) int32 {
	h := int32(bodySize)
	for _, b := range data {
		h = h*31 + int32(b)
	}
	if h == 0 {
		h = 1
	}
	return h
}
