package mylog

import (
	"fmt"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// NewFileRotateHooker rotates the log file daily and drops files older than
// age days (0 keeps seven days).
func NewFileRotateHooker(path string, age uint32) logrus.Hook {
	if len(path) == 0 {
		panic("zero length path")
	}
	if age == 0 {
		age = 7
	}
	pattern := filepath.Join(path, "wallet-cli-%Y%m%d.log")
	writer, err := rotatelogs.New(
		pattern,
		rotatelogs.WithLinkName(filepath.Join(path, "wallet-cli.log")),
		rotatelogs.WithRotationTime(time.Hour*24),
		rotatelogs.WithMaxAge(time.Hour*24*time.Duration(age)),
	)
	if err != nil {
		panic(fmt.Sprintf("rotate logs: %v", err))
	}

	hook := lfshook.NewHook(lfshook.WriterMap{
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, &logrus.TextFormatter{DisableColors: true})
	return hook
}
