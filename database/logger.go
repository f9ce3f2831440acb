package database

import (
	"fmt"

	"github.com/rs/zerolog"
	xlog "xorm.io/xorm/log"
)

// Logger routes xorm's engine and SQL logs into zerolog.
type Logger struct {
	log     zerolog.Logger
	level   xlog.LogLevel
	showSQL bool
}

var _ xlog.Logger = (*Logger)(nil)

func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log, level: xlog.LOG_INFO}
}

func (l *Logger) Debug(v ...interface{}) { l.emit(xlog.LOG_DEBUG, fmt.Sprint(v...)) }
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.emit(xlog.LOG_DEBUG, fmt.Sprintf(format, v...))
}
func (l *Logger) Info(v ...interface{}) { l.emit(xlog.LOG_INFO, fmt.Sprint(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) {
	l.emit(xlog.LOG_INFO, fmt.Sprintf(format, v...))
}
func (l *Logger) Warn(v ...interface{}) { l.emit(xlog.LOG_WARNING, fmt.Sprint(v...)) }
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.emit(xlog.LOG_WARNING, fmt.Sprintf(format, v...))
}
func (l *Logger) Error(v ...interface{}) { l.emit(xlog.LOG_ERR, fmt.Sprint(v...)) }
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.emit(xlog.LOG_ERR, fmt.Sprintf(format, v...))
}

func (l *Logger) Level() xlog.LogLevel     { return l.level }
func (l *Logger) SetLevel(lv xlog.LogLevel) { l.level = lv }

func (l *Logger) ShowSQL(show ...bool) {
	if len(show) == 0 {
		l.showSQL = true
		return
	}
	l.showSQL = show[0]
}

func (l *Logger) IsShowSQL() bool { return l.showSQL }

func (l *Logger) emit(lv xlog.LogLevel, msg string) {
	if lv < l.level {
		return
	}

	var ev *zerolog.Event
	switch lv {
	case xlog.LOG_DEBUG:
		ev = l.log.Debug()
	case xlog.LOG_INFO:
		ev = l.log.Info()
	case xlog.LOG_WARNING:
		ev = l.log.Warn()
	default:
		ev = l.log.Error()
	}
	ev.Str("source", "xorm").Msg(msg)
}
