package structures

import "context"

type MenuItem struct {
	Key     string
	Label   string
	Handler func(ctx context.Context)
	Exit    bool
}
