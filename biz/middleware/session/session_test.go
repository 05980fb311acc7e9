package session

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"

	db_redis "smartparking/be/biz/db/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/hertz/pkg/app"
	hconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/redis/go-redis/v9"
)

func newTestEngine(t *testing.T) (*route.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	db_redis.SetRedisClient(rdb)

	engine := route.NewEngine(hconfig.NewOptions(nil))
	engine.Use(New())
	engine.POST("/login", func(ctx context.Context, c *app.RequestContext) {
		id, err := Login(c, 42)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, id)
	})
	engine.GET("/me", func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, strconv.FormatUint(UserID(c), 10))
	})
	engine.POST("/logout", func(ctx context.Context, c *app.RequestContext) {
		if err := Remove(c); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "bye")
	})
	return engine, mr
}

func cookieOf(w *ut.ResponseRecorder) string {
	return strings.SplitN(string(w.Result().Header.Peek("Set-Cookie")), ";", 2)[0]
}

func TestSession(t *testing.T) {
	engine, mr := newTestEngine(t)

	w := ut.PerformRequest(engine, http.MethodGet, "/me", nil)
	assert.DeepEqual(t, "0", w.Body.String())

	w = ut.PerformRequest(engine, http.MethodPost, "/login", nil)
	assert.DeepEqual(t, http.StatusOK, w.Code)
	sessID := w.Body.String()
	assert.NotEqual(t, "", sessID)
	assert.True(t, mr.Exists("auth_session:"+sessID))

	cookie := ut.Header{Key: "Cookie", Value: cookieOf(w)}
	w = ut.PerformRequest(engine, http.MethodGet, "/me", nil, cookie)
	assert.DeepEqual(t, "42", w.Body.String())

	w = ut.PerformRequest(engine, http.MethodPost, "/logout", nil, cookie)
	assert.DeepEqual(t, http.StatusOK, w.Code)
	assert.False(t, mr.Exists("auth_session:"+sessID))

	w = ut.PerformRequest(engine, http.MethodGet, "/me", nil, cookie)
	assert.DeepEqual(t, "0", w.Body.String())
}

func TestParseSameSite(t *testing.T) {
	assert.DeepEqual(t, http.SameSiteLaxMode, parseSameSite("Lax"))
	assert.DeepEqual(t, http.SameSiteNoneMode, parseSameSite("None"))
	assert.DeepEqual(t, http.SameSiteStrictMode, parseSameSite(""))
}
