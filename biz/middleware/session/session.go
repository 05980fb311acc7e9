package session

import (
	"context"
	"net/http"

	"smartparking/be/biz/config"
	"smartparking/be/biz/db/redis"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/sessions"
	"github.com/rbcervilla/redisstore/v9"
)

const keyUserID = "user_id"

func New() app.HandlerFunc {
	conf := config.GetSessionConf()

	store := NewRedisStore(conf.StorePrefix)
	store.Options(options(conf, defaultInt(conf.MaxAge, 7*24*3600)))

	return sessions.New(defaultString(conf.Name, "auth_session_id"), store)
}

// Login records the user in the session and persists it, the returned id is
// the one the access token is bound to.
func Login(c *app.RequestContext, userID uint64) (string, error) {
	sess := sessions.Default(c)
	sess.Set(keyUserID, userID)
	if err := sess.Save(); err != nil {
		return "", err
	}
	return sess.ID(), nil
}

// UserID returns the user stored by Login, 0 when the session is anonymous.
func UserID(c *app.RequestContext) uint64 {
	id, _ := sessions.Default(c).Get(keyUserID).(uint64)
	return id
}

// Remove expires the session cookie and deletes the stored session.
func Remove(c *app.RequestContext) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(options(config.GetSessionConf(), -1))
	return sess.Save()
}

func options(conf config.SessionConf, maxAge int) sessions.Options {
	return sessions.Options{
		Path:     defaultString(conf.Path, "/"),
		Domain:   conf.Domain,
		MaxAge:   maxAge,
		Secure:   conf.Secure,
		HttpOnly: conf.HTTPOnly,
		SameSite: parseSameSite(conf.SameSite),
	}
}

type RedisStore struct {
	*redisstore.RedisStore
}

func (r *RedisStore) Options(opts sessions.Options) {
	r.RedisStore.Options(*opts.ToGorillaOptions())
}

func NewRedisStore(prefix string) *RedisStore {
	redisStore, err := redisstore.NewRedisStore(context.Background(), redis.GetRedisClient())
	if err != nil {
		panic(err)
	}
	redisStore.KeyPrefix(defaultString(prefix, "auth_session:"))
	return &RedisStore{
		RedisStore: redisStore,
	}
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func parseSameSite(v string) http.SameSite {
	switch v {
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
