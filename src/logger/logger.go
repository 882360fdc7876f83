package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	once sync.Once
	Log  zerolog.Logger
)

func configure(level zerolog.Level, out io.Writer) {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(out),
	}
	zerolog.SetGlobalLevel(level)
	Log = zerolog.New(output).With().Timestamp().Caller().Logger()
}

// Init (re)configures the shared logger. Call it once from main before the
// simulation starts; tests pass zerolog.Disabled.
func Init(level zerolog.Level, out io.Writer) *zerolog.Logger {
	once.Do(func() {})
	configure(level, out)
	return &Log
}

// Get returns the shared logger, configuring it for stdout at info level if
// Init has not run yet.
func Get() *zerolog.Logger {
	once.Do(func() {
		configure(zerolog.InfoLevel, os.Stdout)
	})
	return &Log
}

// OpenFile truncates or creates the log file at path. An empty path gives a
// writer that discards everything.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
