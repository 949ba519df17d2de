// Package log is a thin facade over logrus. Nothing is emitted unless logs.write is enabled.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

// Setup opens today's log file under where.Logs() and applies format and level from the config.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format(time.DateOnly))
	path := filepath.Join(dir, filename)

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether log lines are written anywhere.
func Enabled() bool {
	return enabled
}

// Writer returns a writer whose lines end up in the log at info level.
// Used to capture the stderr of external tools. The caller must close it.
func Writer() io.WriteCloser {
	if !enabled {
		return nopCloser{io.Discard}
	}
	return logrus.StandardLogger().WriterLevel(logrus.InfoLevel)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// With binds structured fields to the next emission.
func With(fields Fields) *Entry {
	return &Entry{fields: fields}
}

// Entry is a set of fields bound to the next emission.
type Entry struct {
	fields Fields
}

func (e *Entry) Infof(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Infof(format, args...)
	}
}

func (e *Entry) Warnf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Warnf(format, args...)
	}
}

func (e *Entry) Errorf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Errorf(format, args...)
	}
}

func (e *Entry) Debugf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Debugf(format, args...)
	}
}

// Severity-specific emissions.

func Panic(args ...any) {
	if enabled {
		logrus.Panic(args...)
	}
}
func Panicf(format string, args ...any) {
	if enabled {
		logrus.Panicf(format, args...)
	}
}
func Fatal(args ...any) {
	if enabled {
		logrus.Fatal(args...)
	}
}
func Fatalf(format string, args ...any) {
	if enabled {
		logrus.Fatalf(format, args...)
	}
}
func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
func Trace(args ...any) {
	if enabled {
		logrus.Trace(args...)
	}
}
func Tracef(format string, args ...any) {
	if enabled {
		logrus.Tracef(format, args...)
	}
}
