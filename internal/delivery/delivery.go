// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a long-running transport serving the dashboard. Serve blocks
// until the delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
