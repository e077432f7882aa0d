package logging

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

const format = `%{time:2006-01-02 15:04:05} %{level:.4s} %{module} %{message}`

// New builds a leveled logger for the given module writing to w. The backend
// is attached to the returned logger only, never installed globally, so the
// process owns exactly the sinks it wired and tests can hand services a
// silent logger.
func New(module, level string, w io.Writer) (*logging.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return nil, err
	}

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")

	logger := logging.MustGetLogger(module)
	logger.SetBackend(leveled)
	return logger, nil
}

// Discard returns a logger that drops everything. Handy default for tests.
func Discard(module string) *logging.Logger {
	logger, _ := New(module, "CRITICAL", io.Discard)
	return logger
}
