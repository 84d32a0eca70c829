// Package delivery defines the contract every transport entry point
// implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP today) started by the application
// root. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
