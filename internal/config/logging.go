package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Logging struct {
	Level logrus.Level
	File  string
}

func NewLogging() (*Logging, error) {
	level := logrus.InfoLevel
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		var err error
		level, err = logrus.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse LOG_LEVEL: %w", err)
		}
	}
	return &Logging{
		Level: level,
		File:  os.Getenv("LOG_FILE"),
	}, nil
}

// Apply configures a logger: colored text on the terminal, plus a
// rotating JSON file when LOG_FILE is set.
func (c Logging) Apply(log *logrus.Logger) error {
	log.SetLevel(c.Level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if c.File == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.File,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      c.Level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	return nil
}
