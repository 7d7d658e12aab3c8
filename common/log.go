package common

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

type loggerKey struct{}

func InitLog(l *log.Logger, debug bool) {
	l.SetOutput(os.Stdout)

	// cloudwatch does not render ansi colors
	l.SetFormatter(&log.TextFormatter{
		ForceColors:      isatty.IsTerminal(os.Stdout.Fd()),
		DisableColors:    !isatty.IsTerminal(os.Stdout.Fd()),
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05.000",
		QuoteEmptyFields: true,
	})

	if debug {
		l.SetLevel(log.DebugLevel)
		l.SetReportCaller(true)
	} else {
		l.SetLevel(log.InfoLevel)
	}
}

func NewLogger() *log.Entry {
	return &log.Entry{
		Logger: log.StandardLogger(),
		Data:   make(log.Fields, 8),
	}
}

func WithLogger(ctx context.Context, l *log.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger never returns nil, a fresh entry is created when ctx carries none
func GetLogger(ctx context.Context) *log.Entry {
	if l, ok := ctx.Value(loggerKey{}).(*log.Entry); ok && l != nil {
		return l
	}

	return NewLogger()
}
