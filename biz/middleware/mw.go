package middleware

import (
	"smartparking/be/biz/middleware/accesslog"
	"smartparking/be/biz/middleware/cors"
	"smartparking/be/biz/middleware/metrics"
	"smartparking/be/biz/middleware/ratelimit"
	"smartparking/be/biz/middleware/recovery"
	"smartparking/be/biz/middleware/session"
	"smartparking/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		metrics.New(),   // 监控指标
		cors.New(),      // 跨域请求
		session.New(),   // 会话
		ratelimit.New(), // 限流
	}
}
