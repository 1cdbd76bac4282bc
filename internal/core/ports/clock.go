package ports

import "time"

// Clock abstracts wall-clock time so waiting-fee and timeout logic can be
// tested with a fixed instant.
type Clock interface {
	Now() time.Time
}
