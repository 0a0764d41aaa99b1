package log

import (
	"os"

	cblog "github.com/charmbracelet/log"
)

var logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
	Prefix:          "tnl",
	ReportTimestamp: false,
	Level:           cblog.InfoLevel,
})

// SetLevel accepts debug, info, warn, error or fatal. Unknown names keep the
// current level and return the parse error.
func SetLevel(level string) error {
	lvl, err := cblog.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}

func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(cblog.DebugLevel)
	}
}

func Debug(msg interface{}, keyvals ...interface{}) { logger.Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { logger.Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { logger.Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { logger.Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { logger.Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { logger.Fatalf(format, args...) }
