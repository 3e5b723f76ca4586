package mylog

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

var (
	colorDebug = ansi.ColorFunc("cyan")
	colorInfo  = ansi.ColorFunc("green")
	colorWarn  = ansi.ColorFunc("yellow")
	colorError = ansi.ColorFunc("red")
	colorPanic = ansi.ColorFunc("red+b")
)

type TextFormatter struct {
	ForceColors     bool
	TimestampFormat string
	FullTimestamp   bool
	ForceFormatting bool
}

func levelColor(level logrus.Level) func(string) string {
	switch level {
	case logrus.DebugLevel:
		return colorDebug
	case logrus.InfoLevel:
		return colorInfo
	case logrus.WarnLevel:
		return colorWarn
	case logrus.ErrorLevel:
		return colorError
	default:
		return colorPanic
	}
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	format := f.TimestampFormat
	if format == "" {
		format = "2006-01-02 15:04:05"
	}
	level := strings.ToUpper(entry.Level.String())
	if f.ForceColors {
		level = levelColor(entry.Level)(level)
	}

	b := &bytes.Buffer{}
	fmt.Fprintf(b, "[%s] %s %s", entry.Time.Format(format), level, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
