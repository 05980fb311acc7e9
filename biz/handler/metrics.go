package handler

import (
	"bytes"
	"context"
	"net/http"

	"smartparking/be/biz/model/errs"
	"smartparking/be/biz/util/metrics"
	"smartparking/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/prometheus/common/expfmt"
)

var metricsFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

// Metrics 监控指标
//
//	@Tags		ops
//	@Summary	Prometheus metrics in text exposition format
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/metrics [GET]
func Metrics(ctx context.Context, c *app.RequestContext) {
	families, err := metrics.Registry.Gather()
	if err != nil {
		// a partial gather is still worth serving
		hlog.CtxWarnf(ctx, "gather metrics err: %v", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, metricsFormat)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			hlog.CtxErrorf(ctx, "encode metrics err: %v", err)
			resp.FailResp(c, errs.ServerError.SetErr(err))
			return
		}
	}
	c.Data(http.StatusOK, string(metricsFormat), buf.Bytes())
}
