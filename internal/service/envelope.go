package service

import (
	"email_size_analyzer/internal/pkg/bytemeter"
)

// Transport overhead model. Deliberately linear; it does not encode MIME.
const (
	EnvelopeHeaderBytes   uint64 = 1500
	EnvelopeTrackingBytes uint64 = 500
)

// Encoding factors as tenths: 1.3 for the subject, 1.2 for the preheader.
const (
	subjectEncodingTenths   uint64 = 13
	preheaderEncodingTenths uint64 = 12
)

// EstimateEnvelope approximates the bytes a transport adds on top of the HTML
// body: fixed headers, the encoded subject and preheader, and tracking markup.
func EstimateEnvelope(subject, preheader string) uint64 {
	total := EnvelopeHeaderBytes
	total += ceilTenths(bytemeter.SizeOf(subject), subjectEncodingTenths)
	total += ceilTenths(bytemeter.SizeOf(preheader), preheaderEncodingTenths)
	return total + EnvelopeTrackingBytes
}

// ceilTenths returns ceil(n * tenths / 10) without floating point.
func ceilTenths(n, tenths uint64) uint64 {
	return (n*tenths + 9) / 10
}
