package hw

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// NetworkTransport POSTs raw frame bytes to the peer's /frame endpoint.
// Any 2xx response counts as delivered.
type NetworkTransport struct {
	base   string // e.g. "http://192.168.4.1"
	client *http.Client
}

// NewNetwork builds a transport for the given host ("192.168.4.1" or
// "http://192.168.4.1"). It does not touch the network; use Connect to
// verify reachability.
func NewNetwork(host string) *NetworkTransport {
	base := host
	if len(base) < 7 || base[:7] != "http://" {
		base = "http://" + base
	}
	return &NetworkTransport{
		base:   base,
		client: &http.Client{Timeout: 2 * time.Second},
	}
}

// Connect verifies the peer answers at its root URL.
func (t *NetworkTransport) Connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.base+"/", nil)
	if err != nil {
		return &ConnectionError{Target: t.base, Err: err}
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return &ConnectionError{Target: t.base, Err: err}
	}
	resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return &ConnectionError{Target: t.base, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	return nil
}

func (t *NetworkTransport) Send(ctx context.Context, frame []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.base+"/frame", bytes.NewReader(frame))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("peer rejected frame: HTTP %d", resp.StatusCode)
	}
	return nil
}

func (t *NetworkTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
