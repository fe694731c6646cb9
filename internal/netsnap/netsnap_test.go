package netsnap

import "testing"

func TestEndpoints(t *testing.T) {
	c := Connection{
		LocalAddr:  "192.168.1.10",
		LocalPort:  51544,
		RemoteAddr: "8.8.8.8",
		RemotePort: 443,
		State:      StateEstablished,
		PID:        4242,
	}

	if got := c.LocalEndpoint(); got != "192.168.1.10:51544" {
		t.Errorf("LocalEndpoint() = %q", got)
	}
	if got := c.RemoteEndpoint(); got != "8.8.8.8:443" {
		t.Errorf("RemoteEndpoint() = %q", got)
	}
}

func TestEndpointsZeroRemote(t *testing.T) {
	c := Connection{
		LocalAddr: "0.0.0.0",
		LocalPort: 8080,
		State:     StateListen,
	}

	if got := c.RemoteEndpoint(); got != ":0" {
		t.Errorf("RemoteEndpoint() = %q, want \":0\"", got)
	}
}
