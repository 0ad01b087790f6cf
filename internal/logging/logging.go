package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/config"
)

// Setup builds a logger writing to out with the configured level and format.
func Setup(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var formatter logrus.Formatter
	switch cfg.Format {
	case "json":
		formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		}
	case "text", "":
		formatter = &logrus.TextFormatter{DisableTimestamp: true}
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return &logrus.Logger{
		Out:       out,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
		ExitFunc:  func(code int) {},
	}, nil
}
