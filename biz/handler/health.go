package handler

import (
	"context"
	"net/http"

	"smartparking/be/biz/db/mysql"
	"smartparking/be/biz/db/redis"
	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Healthz 健康检查接口
//
//	@Tags		ops
//	@Summary	Database and redis reachability
//	@Produce	json
//	@Success	200	{object}	dto.MessageResp
//	@Failure	500	{object}	dto.ErrorResp
//	@Router		/healthz [GET]
func Healthz(ctx context.Context, c *app.RequestContext) {
	sqlDB, err := mysql.GetDbConn().DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "healthz database err: %v", err)
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	if err := redis.GetRedisClient().Ping(ctx).Err(); err != nil {
		hlog.CtxErrorf(ctx, "healthz redis err: %v", err)
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	c.JSON(http.StatusOK, map[string]string{"mensaje": "ok"})
}
