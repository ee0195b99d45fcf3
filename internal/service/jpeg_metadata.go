package service

import "encoding/binary"

const (
	jpegMarkerSOS  = 0xDA
	jpegMarkerAPP1 = 0xE1 // EXIF, XMP
	jpegMarkerAPP2 = 0xE2 // ICC profile
)

// jpegMetadataSegments returns the raw APP1 and APP2 segments of a JPEG, in
// file order. Malformed input yields whatever was read before the fault.
func jpegMetadataSegments(data []byte) []byte {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil
	}

	var out []byte
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return out
		}
		marker := data[pos+1]
		if marker == 0xFF {
			pos++
			continue
		}
		if marker == jpegMarkerSOS {
			return out
		}

		length := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		end := pos + 2 + length
		if length < 2 || end > len(data) {
			return out
		}
		if marker == jpegMarkerAPP1 || marker == jpegMarkerAPP2 {
			out = append(out, data[pos:end]...)
		}
		pos = end
	}
	return out
}

// withJPEGMetadata splices segments right after the SOI marker of encoded.
func withJPEGMetadata(encoded, segments []byte) []byte {
	if len(segments) == 0 || len(encoded) < 2 {
		return encoded
	}
	out := make([]byte, 0, len(encoded)+len(segments))
	out = append(out, encoded[:2]...)
	out = append(out, segments...)
	return append(out, encoded[2:]...)
}
