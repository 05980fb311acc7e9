package mysql

import (
	"context"
	"fmt"
	"time"

	"smartparking/be/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/glebarez/sqlite"
	drv "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()
	db, err := Open(conf)
	if err != nil {
		panic(err)
	}
	dbConn = db
	hlog.Infof("database connected, driver=%s", driver(conf))
}

func GetDbConn() *gorm.DB {
	return dbConn
}

// Dialect returns the configured driver name.
func Dialect() string {
	return driver(config.GetMySQLConf())
}

// Open builds the pooled connection and pings it once.
func Open(conf config.MySQLConf) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver(conf) {
	case DriverSQLite:
		dialector = sqlite.Open(defaultString(conf.DSN, "smartparking.db"))
	case DriverMySQL:
		dialector = gormmysql.Open(dsn(conf))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(gormWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if driver(conf) == DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(defaultInt(conf.MaxOpenConns, 20))
		sqlDB.SetMaxIdleConns(defaultInt(conf.MaxIdleConns, 10))
	}
	sqlDB.SetConnMaxLifetime(time.Duration(defaultInt(conf.ConnMaxLifetimeSec, 3600)) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func dsn(conf config.MySQLConf) string {
	if conf.DSN != "" {
		return conf.DSN
	}
	c := drv.NewConfig()
	c.User = conf.Username
	c.Passwd = conf.Password
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", defaultString(conf.IP, "127.0.0.1"), defaultInt(conf.Port, 3306))
	c.DBName = conf.DBName
	c.ParseTime = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

func driver(conf config.MySQLConf) string {
	return defaultString(conf.Driver, DriverMySQL)
}

type gormWriter struct{}

func (gormWriter) Printf(format string, v ...interface{}) {
	hlog.Warnf(format, v...)
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
