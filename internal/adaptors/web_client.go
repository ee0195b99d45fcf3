package adaptors

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"email_size_analyzer/internal/pkg/errors"
	"email_size_analyzer/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type WebClient struct {
	client   *http.Client
	maxBytes int64
	log      *log.Logger
}

// NewWebClient returns a client whose downloads are capped at maxBytes. Unless
// allowPrivate is set, it refuses to connect to loopback, private, link-local
// and other non-public addresses, whatever the URL's host resolves to.
func NewWebClient(timeout time.Duration, maxBytes int64, allowPrivate bool, log *log.Logger) *WebClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !allowPrivate {
		dialer := &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
			Control: func(_, address string, _ syscall.RawConn) error {
				return checkPublicAddress(address)
			},
		}
		transport.DialContext = dialer.DialContext
		// A proxy would be the dialed peer, hiding the real target.
		transport.Proxy = nil
	}

	rTripper := promhttp.InstrumentRoundTripperDuration(
		metrics.HTTPClientRequestDuration,
		promhttp.InstrumentRoundTripperCounter(metrics.HTTPClientRequestsTotal, transport))

	return &WebClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: rTripper,
		},
		maxBytes: maxBytes,
		log:      log,
	}
}

var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// checkPublicAddress rejects dial targets that are not publicly routable.
func checkPublicAddress(address string) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return errors.Wrap(err, `invalid dial address`)
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return errors.Wrap(err, `invalid dial address`)
	}
	ip = ip.Unmap()

	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast() ||
		sharedAddressSpace.Contains(ip) {
		return errors.Errorf(`refusing to fetch from non-public address %s`, ip)
	}
	return nil
}

func (w *WebClient) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		w.log.WithError(err).Error(`failed to create request`)
		return nil, "", errors.Mark(errors.ErrFetchImage, err)
	}
	req.Header.Set("Accept", "image/avif,image/webp,image/png,image/jpeg,image/*;q=0.8")

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.WithError(err).Error(`image request failed`)
		return nil, "", errors.Mark(errors.ErrFetchImage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		w.log.Errorf(`image request returned status %d`, resp.StatusCode)
		return nil, "", errors.Mark(errors.ErrFetchImage, fmt.Errorf(`unexpected status code %d`, resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, w.maxBytes+1))
	if err != nil {
		w.log.Errorf(`failed to read response body. error: %v`, err)
		return nil, "", errors.Mark(errors.ErrFetchImage, err)
	}
	if int64(len(body)) > w.maxBytes {
		return nil, "", errors.Mark(errors.ErrFetchImage, fmt.Errorf(`image exceeds %d bytes`, w.maxBytes))
	}

	return body, resp.Header.Get("Content-Type"), nil
}
