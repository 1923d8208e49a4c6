package migrations

import (
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// gooseLogger routes goose output into the service logger.
type gooseLogger struct {
	log *logger.Logger
}

var _ goose.Logger = gooseLogger{}

func newGooseLogger(log *logger.Logger) gooseLogger {
	if log == nil {
		log = logger.Nop()
	}
	return gooseLogger{log: log}
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msg(gooseMessage(format, v...))
}

// Fatalf logs at fatal level, which exits the process.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Msg(gooseMessage(format, v...))
}

// goose terminates most of its format strings with a newline.
func gooseMessage(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
