package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// VerdictKey identifies an analysis by everything that influences its verdict.
func VerdictKey(html string, opts AnalyzeOptions) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatBool(opts.IncludeEnvelope)))
	h.Write([]byte{0})
	h.Write([]byte(opts.Subject))
	h.Write([]byte{0})
	h.Write([]byte(opts.Preheader))
	h.Write([]byte{0})
	h.Write([]byte(html))
	return hex.EncodeToString(h.Sum(nil))
}
