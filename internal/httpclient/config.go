package httpclient

import "time"

// HTTPClientConfig holds the settings NewHTTPClient builds a client from
type HTTPClientConfig struct {
	Timeout             time.Duration
	DialTimeout         time.Duration
	KeepAlive           time.Duration
	TLSHandshakeTimeout time.Duration
	IdleConnTimeout     time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	InsecureSkipVerify  bool
	FollowRedirects     bool
	MaxRedirects        int
	EnableHTTP2         bool
	UserAgent           string
	MaxContentSize      int64 // bytes, 0 for no limit
	CustomHeaders       map[string]string
}

// DefaultHTTPClientConfig returns the default configuration. The request
// timeout is always explicit; nothing is left to net/http's zero value.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             30 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		InsecureSkipVerify:  false,
		FollowRedirects:     true,
		MaxRedirects:        10,
		EnableHTTP2:         true,
		UserAgent:           "pagewatch/1.0",
		MaxContentSize:      10 * 1024 * 1024,
		CustomHeaders:       map[string]string{},
	}
}
