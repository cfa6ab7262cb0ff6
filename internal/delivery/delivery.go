// Package delivery contains the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running transport started by a binary.
type Delivery interface {
	Serve(ctx context.Context) error
}
