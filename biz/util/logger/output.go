package logger

import (
	"io"
	"os"
	"path/filepath"

	"smartparking/be/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogDir     = "./log"
	defaultLogFile    = "smartparking.log"
	defaultMaxSizeMB  = 512
	defaultMaxBackups = 10
	defaultMaxAgeDays = 14
)

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// newRotation builds the file sink, nothing touches the disk until the first write.
func newRotation(conf config.LoggerConf) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(orDefault(conf.Dir, defaultLogDir), orDefault(conf.FileName, defaultLogFile)),
		MaxSize:    orDefault(conf.MaxSize, defaultMaxSizeMB),
		MaxBackups: orDefault(conf.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(conf.MaxAge, defaultMaxAgeDays),
		LocalTime:  true,
	}
}

// newOutput writes every line to stdout and to the rotated file.
func newOutput() io.Writer {
	return io.MultiWriter(os.Stdout, newRotation(config.GetLoggerConf()))
}

var levels = map[string]hlog.Level{
	"trace":  hlog.LevelTrace,
	"debug":  hlog.LevelDebug,
	"info":   hlog.LevelInfo,
	"notice": hlog.LevelNotice,
	"warn":   hlog.LevelWarn,
	"error":  hlog.LevelError,
	"fatal":  hlog.LevelFatal,
}

// parseLevel falls back to info for empty or unknown names.
func parseLevel(name string) hlog.Level {
	if lv, ok := levels[name]; ok {
		return lv
	}
	return hlog.LevelInfo
}

func newLevel() hlog.Level {
	return parseLevel(config.GetLoggerConf().Level)
}
