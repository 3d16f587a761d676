package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllowCountsPerKey(t *testing.T) {
	l := New(2, time.Minute)

	if !l.Allow("a") {
		t.Fatal("first request should be allowed")
	}
	if !l.Allow("a") {
		t.Fatal("second request should be allowed")
	}
	if l.Allow("a") {
		t.Error("third request should be blocked")
	}
	if !l.Allow("b") {
		t.Error("a different key should have its own window")
	}
}

func TestResetClearsWindow(t *testing.T) {
	l := New(1, time.Minute)

	l.Allow("a")
	if l.Allow("a") {
		t.Fatal("second request should be blocked")
	}

	l.Reset("a")
	if !l.Allow("a") {
		t.Error("request after Reset should be allowed")
	}
}

func TestRemaining(t *testing.T) {
	l := New(3, time.Minute)

	if got := l.Remaining("a"); got != 3 {
		t.Errorf("fresh key: got %d remaining, want 3", got)
	}
	l.Allow("a")
	l.Allow("a")
	if got := l.Remaining("a"); got != 1 {
		t.Errorf("after two requests: got %d remaining, want 1", got)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "203.0.113.9:4431", want: "203.0.113.9"},
		{name: "remote addr without port", remoteAddr: "203.0.113.9", want: "203.0.113.9"},
		{name: "x-forwarded-for wins", remoteAddr: "10.0.0.1:80", xff: "198.51.100.7, 10.0.0.2", want: "198.51.100.7"},
		{name: "x-real-ip fallback", remoteAddr: "10.0.0.1:80", xri: "198.51.100.8", want: "198.51.100.8"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/admin/login", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.xff != "" {
				r.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xri != "" {
				r.Header.Set("X-Real-IP", tc.xri)
			}
			if got := ClientIP(r); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
