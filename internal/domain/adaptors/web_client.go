package adaptors

import "context"

// WebClient downloads a remote payload, returning its body and content type.
type WebClient interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}
