package db

import (
	"context"

	"smartparking/be/biz/db/migrate"
	"smartparking/be/biz/db/mysql"
	"smartparking/be/biz/db/redis"
)

// Init opens every store the service depends on and panics when one is
// unreachable.
func Init() {
	mysql.Init()
	redis.Init()

	if err := migrate.Run(context.Background(), mysql.GetDbConn(), mysql.Dialect()); err != nil {
		panic(err)
	}
}
