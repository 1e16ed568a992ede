package security

import (
	"io"
	"strings"
	"testing"
)

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https", url: "https://example.com/image.png"},
		{name: "https with port", url: "https://example.com:8443/image.png"},
		{name: "empty", url: "", wantErr: true},
		{name: "plain http", url: "http://example.com/image.png", wantErr: true},
		{name: "file scheme", url: "file:///etc/passwd", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "localhost", url: "https://localhost/image.png", wantErr: true},
		{name: "loopback ip", url: "https://127.0.0.1/image.png", wantErr: true},
		{name: "ipv6 loopback", url: "https://[::1]/image.png", wantErr: true},
		{name: "private 10", url: "https://10.0.0.5/image.png", wantErr: true},
		{name: "private 192.168", url: "https://192.168.1.1/image.png", wantErr: true},
		{name: "private 172.16", url: "https://172.16.0.1/image.png", wantErr: true},
		{name: "link local", url: "https://169.254.169.254/latest/meta-data", wantErr: true},
		{name: "uppercase scheme", url: "HTTPS://example.com/image.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHTTPURL(tt.url)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateHTTPURL(%q) should fail", tt.url)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateHTTPURL(%q) error = %v", tt.url, err)
			}
		})
	}
}

func TestLimitedReaderWithinLimit(t *testing.T) {
	r := NewLimitedReader(strings.NewReader("hello"), 10)

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Read %q, want %q", data, "hello")
	}
}

func TestLimitedReaderExceedsLimit(t *testing.T) {
	r := NewLimitedReader(strings.NewReader("hello world"), 5)

	data, err := io.ReadAll(r)
	if err == nil {
		t.Fatal("Reading past the limit should fail")
	}
	if string(data) != "hello" {
		t.Errorf("Read %q before the limit, want %q", data, "hello")
	}
}
