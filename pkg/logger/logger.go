// Package logger expone un logger estructurado sobre zerolog: consola
// legible en desarrollo, JSON en el resto de entornos.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env    string    // development -> consola legible; resto -> JSON
	Level  string    // debug, info, warn, error
	Writer io.Writer // destino de salida; nil -> os.Stdout
}

// Logger wrapper sobre zerolog para inyección en handlers y middlewares.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger y redirige también el logger global de zerolog, para
// que las librerías que lo usen escriban al mismo destino.
func New(cfg Config) *Logger {
	out := cfg.Writer
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zl := zerolog.New(out).Level(level(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Nop devuelve un logger que descarta todo. Para tests que no inspeccionan
// la salida.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func level(s string) zerolog.Level {
	lv, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lv == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lv
}

// Debug, Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }
