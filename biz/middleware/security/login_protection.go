package security

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"smartparking/be/biz/config"
	"smartparking/be/biz/db/redis"
	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/util/interceptor"
	"smartparking/be/biz/util/metrics"
	"smartparking/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	keyLoginBlockHour   = "login_block_h:"
	keyLoginBlockMinute = "login_block_m:"
	keyLoginFailLvl     = "login_fail_level:"
	keyLoginFail        = "login_fail:"
)

// NewLoginProtection blocks a client ip after repeated credential failures.
// The first block lasts minutes, a second one within the level window lasts hours.
func NewLoginProtection() app.HandlerFunc {
	conf := config.GetLoginProtectionConf()

	window := conf.WindowSeconds
	if window <= 0 {
		window = 300
	}

	limit := conf.Limit
	if limit <= 0 {
		limit = 3
	}

	durationBlockMin := time.Duration(conf.BlockMinDuration) * time.Minute
	if durationBlockMin <= 0 {
		durationBlockMin = 5 * time.Minute
	}

	durationBlockHour := time.Duration(conf.BlockHourDuration) * time.Hour
	if durationBlockHour <= 0 {
		durationBlockHour = 24 * time.Hour
	}

	durationFailLvl := time.Duration(conf.LevelDuration) * time.Second
	if durationFailLvl <= 0 {
		durationFailLvl = 30 * time.Minute
	}

	// the interceptor denies when current > limit, the block starts on the Nth failure
	failInterceptor := interceptor.NewInterceptor(window, int64(limit-1))

	return func(ctx context.Context, c *app.RequestContext) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		rdb := redis.GetRedisClient()

		// 先校验小时拦截策略
		if n, _ := rdb.Exists(ctx, interceptor.Key(keyLoginBlockHour+ip)).Result(); n > 0 {
			metrics.ObserveLogin(metrics.LoginBlocked)
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("Demasiados intentos fallidos, intente de nuevo en %v horas.", durationBlockHour.Hours())))
			return
		}

		// 再校验分钟拦截策略
		if n, _ := rdb.Exists(ctx, interceptor.Key(keyLoginBlockMinute+ip)).Result(); n > 0 {
			metrics.ObserveLogin(metrics.LoginBlocked)
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("Demasiados intentos fallidos, intente de nuevo en %v minutos.", durationBlockMin.Minutes())))
			return
		}

		c.Next(ctx)

		// only credential failures count, validation and server errors do not
		if c.Response.StatusCode() != http.StatusUnauthorized {
			return
		}

		allowed, err := failInterceptor.Allow(ctx, keyLoginFail+ip)
		if err != nil {
			hlog.CtxErrorf(ctx, "login fail interceptor error: %v", err)
			return
		}
		if allowed {
			return
		}

		lvlExists, _ := rdb.Exists(ctx, keyLoginFailLvl+ip).Result()
		if lvlExists > 0 {
			if err := rdb.Set(ctx, interceptor.Key(keyLoginBlockHour+ip), "1", durationBlockHour).Err(); err != nil {
				hlog.CtxErrorf(ctx, "set login block key err: %v", err)
				return
			}
			hlog.CtxInfof(ctx, "login protection: ip %s blocked for %v (level 2)", ip, durationBlockHour)
			return
		}

		pipe := rdb.Pipeline()
		pipe.Set(ctx, interceptor.Key(keyLoginBlockMinute+ip), "1", durationBlockMin)
		pipe.Set(ctx, keyLoginFailLvl+ip, "1", durationFailLvl)
		if _, err := pipe.Exec(ctx); err != nil {
			hlog.CtxErrorf(ctx, "set login block keys err: %v", err)
			return
		}
		hlog.CtxInfof(ctx, "login protection: ip %s blocked for %v (level 1)", ip, durationBlockMin)
	}
}
