package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictKey(t *testing.T) {
	base := VerdictKey("<p>x</p>", AnalyzeOptions{Subject: "s", IncludeEnvelope: true})

	assert.Len(t, base, 64)
	assert.Equal(t, base, VerdictKey("<p>x</p>", AnalyzeOptions{Subject: "s", IncludeEnvelope: true}))
	assert.NotEqual(t, base, VerdictKey("<p>x</p>", AnalyzeOptions{Subject: "s"}))
	assert.NotEqual(t, base, VerdictKey("<p>x</p>", AnalyzeOptions{Preheader: "s", IncludeEnvelope: true}))
	assert.NotEqual(t, base, VerdictKey("<p>y</p>", AnalyzeOptions{Subject: "s", IncludeEnvelope: true}))
}
