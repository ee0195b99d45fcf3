// Package bytemeter measures payload sizes. Sizes are always UTF-8 byte
// lengths; character counts are reported separately and never stand in for them.
package bytemeter

import (
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// SizeOf returns the UTF-8 encoded length of s in bytes.
func SizeOf(s string) uint64 {
	return uint64(len(s))
}

// CharCount returns the number of runes in s.
func CharCount(s string) uint32 {
	return uint32(utf8.RuneCountInString(s))
}

// Label renders a byte count for humans, e.g. "90 KiB".
func Label(n uint64) string {
	return humanize.IBytes(n)
}
