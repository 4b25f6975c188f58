package televideo

import "context"

// Fetcher retrieves raw response bodies from URLs. It is the transport
// seam between the Content Client and the network.
type Fetcher interface {
	// Fetch issues a single GET request and returns the response body.
	// The context controls timeout and cancellation. Errors carry the
	// application code for the failure category: ENOTFOUND for a
	// non-success status, EUNAVAILABLE for transport failures, and
	// EINTERNAL when the body could not be read.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
