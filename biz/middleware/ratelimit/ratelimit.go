package ratelimit

import (
	"context"

	"smartparking/be/biz/config"
	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/util/interceptor"
	"smartparking/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/sessions"
)

type rule struct {
	interceptor *interceptor.Interceptor
	hasSession  bool
}

// New limits the routes listed in config.GetRateLimitConf. Rules match the
// registered route pattern, so /api/usuarios/1 and /api/usuarios/2 share the
// rule of /api/usuarios/:id. Routes without a rule are not limited.
func New() app.HandlerFunc {
	rules := make(map[string]*rule)
	for _, conf := range config.GetRateLimitConf() {
		if conf.Path != "" && conf.WindowSeconds > 0 && conf.Limit > 0 {
			rules[conf.Path] = &rule{
				interceptor: interceptor.NewInterceptor(conf.WindowSeconds, conf.Limit),
				hasSession:  conf.HasSession,
			}
		}
	}

	return func(ctx context.Context, c *app.RequestContext) {
		path := c.FullPath()
		r, ok := rules[path]
		if !ok {
			c.Next(ctx)
			return
		}

		var key string
		if r.hasSession {
			key = sessions.Default(c).ID()
		} else {
			key = c.ClientIP()
		}
		key = "api:" + path + ":" + key

		allowed, err := r.interceptor.Allow(ctx, key)
		if err != nil {
			// fail open
			hlog.CtxErrorf(ctx, "rate limit error for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			hlog.CtxInfof(ctx, "rate limit reached: %s", key)
			resp.AbortWithErr(c, errs.TooManyRequest)
			return
		}

		c.Next(ctx)
	}
}
