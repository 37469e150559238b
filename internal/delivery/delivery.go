// Package delivery defines the contract every transport entry point
// implements, so main can start them uniformly.
package delivery

import (
	"context"
)

// Delivery is a long-running entry point such as an HTTP server or the
// notification scheduler. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
