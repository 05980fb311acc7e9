package logger

import (
	"io"

	"smartparking/be/biz/util/reqctx"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzlogrus "github.com/hertz-contrib/logger/logrus"
	"github.com/sirupsen/logrus"
)

const fieldLogID = "log_id"

func Init() {
	hlog.SetLogger(newLogger(newOutput(), newLevel()))
}

func newLogger(w io.Writer, level hlog.Level) *hertzlogrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})

	hl := hertzlogrus.NewLogger(
		hertzlogrus.WithLogger(l),
		hertzlogrus.WithHook(logIDHook{}),
	)
	hl.SetOutput(w)
	hl.SetLevel(level)
	return hl
}

// logIDHook stamps Ctx* entries with the request's log id.
type logIDHook struct{}

func (logIDHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (logIDHook) Fire(e *logrus.Entry) error {
	if e.Context == nil {
		return nil
	}
	if logID := reqctx.LogID(e.Context); logID != "" {
		e.Data[fieldLogID] = logID
	}
	return nil
}
