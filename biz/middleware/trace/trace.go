package trace

import (
	"context"

	"smartparking/be/biz/util/id_gen"
	"smartparking/be/biz/util/reqctx"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	HeaderLogID = "X-Log-ID"
)

// New propagates the caller's log id or creates one, and echoes it back.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := c.Request.Header.Get(HeaderLogID)
		if logID == "" {
			logID = id_gen.NewID()
		}
		ctx = reqctx.WithLogID(ctx, logID)
		c.Header(HeaderLogID, logID)
		c.Next(ctx)
	}
}
