package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. The full stream goes to a log file
// under the user cache dir; the console only sees warnings unless verbose is
// set.
func NewLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	console := &consoleHook{level: logrus.WarnLevel}
	if verbose {
		console.level = logrus.DebugLevel
		log.SetLevel(logrus.DebugLevel)
	}

	if file := openLogFile(); file != nil {
		log.SetOutput(file)
		log.AddHook(console)
	} else {
		log.SetOutput(os.Stderr)
	}

	return log
}

func openLogFile() *os.File {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil
	}

	dir := filepath.Join(cacheDir, "az-prune")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}

	file, err := os.OpenFile(filepath.Join(dir, "az-prune.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	return file
}

// consoleHook mirrors selected entries to stderr so warnings stay visible
// while the full stream lands in the log file.
type consoleHook struct {
	level logrus.Level
}

func (h *consoleHook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, h.level+1)
	for _, level := range logrus.AllLevels {
		if level <= h.level {
			levels = append(levels, level)
		}
	}
	return levels
}

func (h *consoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	_, err = io.WriteString(os.Stderr, line)
	return err
}
