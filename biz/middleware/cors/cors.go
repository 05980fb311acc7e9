package cors

import (
	"slices"
	"time"

	"smartparking/be/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

var (
	defaultMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	defaultHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Log-ID"}
)

func New() app.HandlerFunc {
	return cors.New(newConfig(config.GetCORSConf()))
}

func newConfig(corsConf config.CORSConf) cors.Config {
	cfg := cors.Config{
		AllowMethods:     defaultIfEmpty(corsConf.AllowMethods, defaultMethods),
		AllowHeaders:     defaultIfEmpty(corsConf.AllowHeaders, defaultHeaders),
		ExposeHeaders:    []string{"X-Log-ID"},
		AllowCredentials: corsConf.AllowCredentials,
		MaxAge:           time.Duration(corsConf.MaxAge) * time.Second,
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 12 * time.Hour
	}

	switch {
	case len(corsConf.AllowOrigins) == 0 || slices.Contains(corsConf.AllowOrigins, "*"):
		if corsConf.AllowCredentials {
			// a literal "*" is rejected by browsers when credentials are allowed
			cfg.AllowOriginFunc = func(string) bool { return true }
		} else {
			cfg.AllowAllOrigins = true
		}
	default:
		cfg.AllowOrigins = corsConf.AllowOrigins
	}

	return cfg
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
