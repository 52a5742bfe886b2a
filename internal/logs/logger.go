package logs

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger — глобальный логгер приложения. Пригоден к использованию и до
// Init (дефолтные настройки logrus), Init перенастраивает его из конфига.
var Logger = logrus.New()

// Options — параметры инициализации логгера.
type Options struct {
	Level  string // trace|debug|info|warning|error|fatal
	Format string // text|json
	File   string // путь/префикс лог-файла; если пусто — только stdout
}

// Init настраивает глобальный логгер по переданным опциям.
func Init(opts Options) {
	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if opts.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if opts.File != "" {
		name := fmt.Sprintf("%s_%s.log", opts.File, time.Now().Format("2006-01-02_15-04-05"))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			Logger.Fatalf("failed to open log file %s: %v", name, err)
		}
		Logger.SetOutput(io.MultiWriter(f, os.Stdout))
	} else {
		Logger.SetOutput(os.Stdout)
	}
}
