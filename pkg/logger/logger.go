// Package logger arma el logger estructurado de la aplicación sobre zerolog.
// Todo componente que loguea recibe un *Logger por inyección en vez de usar
// el logger global.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config define el entorno y el nivel mínimo a emitir.
type Config struct {
	Env   string // "development" imprime consola coloreada; cualquier otro valor, JSON
	Level string // debug, info, warn o error; vacío equivale a info
}

// Logger envuelve zerolog exponiendo solo los niveles que la aplicación usa.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según la configuración. También reapunta el logger
// global de zerolog, así las dependencias que lo usan salen por el mismo
// destino.
func New(cfg Config) *Logger {
	var salida io.Writer = os.Stdout
	if cfg.Env == "development" {
		salida = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(salida).
		Level(nivelDesde(cfg.Level)).
		With().Timestamp().
		Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func nivelDesde(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal loguea y termina el proceso; reservado para los arranques en cmd/.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
