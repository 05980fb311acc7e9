package main

import (
	"flag"
	"time"

	"smartparking/be/biz/config"
	"smartparking/be/biz/db"
	"smartparking/be/biz/middleware"
	"smartparking/be/biz/util/logger"
	"smartparking/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app/server"
)

//	@title			smartparking user API
//	@version		1.0
//	@description	User registration, login and management.
//	@BasePath		/

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "config file path")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	NewEngine().Spin()
}

// NewEngine wires the middleware suite and the routes. Stores must be
// initialized before it is called.
func NewEngine() *server.Hertz {
	conf := config.GetServerConf()
	addr := conf.Addr
	if addr == "" {
		addr = ":3000"
	}
	exitWait := time.Duration(conf.ExitWaitSeconds) * time.Second
	if exitWait <= 0 {
		exitWait = 5 * time.Second
	}

	h := server.New(
		server.WithHostPorts(addr),
		server.WithExitWaitTime(exitWait),
		server.WithCustomValidatorFunc(validate.Func),
	)
	h.Use(middleware.Suite()...)
	register(h)
	return h
}
