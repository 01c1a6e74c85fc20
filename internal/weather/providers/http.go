package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnexpectedStatus is returned on a non-2xx upstream response.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrStationNotListed is returned when a directory lookup finds no p_c
	// token for the requested station.
	ErrStationNotListed = errors.New("station not in directory listing")

	// ErrMissingEmail is returned when a SILO call is attempted without the
	// email address SILO's terms of use require.
	ErrMissingEmail = errors.New("silo email address not configured")

	errNoHTTPClient = errors.New("http client not configured")
)

// getBody issues a GET for url and returns the full response body. The
// response is read and closed on all paths; there is no retry.
func getBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
