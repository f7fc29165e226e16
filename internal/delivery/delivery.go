// Package delivery defines the contract shared by every transport that
// exposes the application to the outside world.
package delivery

import "context"

// Delivery is a long-running transport such as an HTTP server.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
