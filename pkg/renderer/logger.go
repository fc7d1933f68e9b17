package renderer

import (
	"fmt"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

// StdoutLogger implements core.Logger by writing to stdout
type StdoutLogger struct{}

func (l *StdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewStdoutLogger creates a new stdout logger
func NewStdoutLogger() core.Logger {
	return &StdoutLogger{}
}
