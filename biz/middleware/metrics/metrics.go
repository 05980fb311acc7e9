package metrics

import (
	"context"
	"time"

	"smartparking/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app"
)

// New records every handled request under its route pattern, unmatched
// requests are not recorded to keep the label set bounded.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)

		route := c.FullPath()
		if route == "" {
			return
		}
		metrics.ObserveRequest(string(c.Method()), route, c.Response.StatusCode(), time.Since(start))
	}
}
