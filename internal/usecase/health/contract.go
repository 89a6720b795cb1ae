package health

import "context"

// Pinger reports reachability of one storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
}
