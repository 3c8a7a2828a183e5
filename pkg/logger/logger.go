package logger

import (
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "todoServer"

func Init(debug bool) zerolog.Logger {
	return New(os.Stdout, debug)
}

// New собирает логгер и делает его глобальным, чтобы пакеты с log.* писали туда же.
func New(out io.Writer, debug bool) zerolog.Logger {
	var zlog zerolog.Logger
	zerolog.TimestampFieldName = "Log time"
	zerolog.LevelFieldName = "lvl"
	zerolog.CallerMarshalFunc = func(_ uintptr, filename string, line int) string {
		shortname := filename
		for i := len(filename) - 1; i > 0; i-- {
			if filename[i] == '/' {
				shortname = filename[i+1:]
				break
			}
		}
		return shortname + ":" + strconv.Itoa(line)
	}
	zerolog.CallerFieldName = "call"

	if debug {
		zlog = zerolog.
			New(zerolog.ConsoleWriter{Out: out}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Caller().
			Str("service", serviceName).
			Logger()
	} else {
		zlog = zerolog.
			New(out).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Str("service", serviceName).
			Logger()
	}

	log.Logger = zlog
	return zlog
}
