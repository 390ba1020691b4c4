package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"ripple-cli/types"

	"github.com/google/uuid"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second
const slowReqTimeout = 5 * time.Minute

type Api struct{}

var Client types.ApiClient = (*Api)(nil)

var apiHost string

func init() {
	if host := os.Getenv("RIPPLE_API_HOST"); host != "" {
		apiHost = host
	} else if os.Getenv("RIPPLE_ENV") == "development" {
		apiHost = "http://localhost:3001"
	} else {
		apiHost = "https://api.ripple.social"
	}
}

func GetApiHost() string {
	return apiHost
}

// SetApiHost overrides the API host. Used by tests pointing the client at a
// local server.
func SetApiHost(host string) {
	apiHost = host
}

// tokenProvider is the injected session accessor; the transport reads the
// bearer token through it on every request. auth is the only writer of the
// underlying session, so there is no shared mutable header to desync.
var tokenProvider func() string

func SetTokenProvider(fn func() string) {
	tokenProvider = fn
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction, attaching the session token
// and a request id.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tokenProvider != nil {
		if token := tokenProvider(); token != "" {
			req.Header.Set("Authorization", token)
		}
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &http.Transport{
		Dial: netDialer.Dial,
	},
	Timeout: fastReqTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

// No overall timeout beyond the dial timeout; uploads can be slow
var authenticatedSlowClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: slowReqTimeout,
}
