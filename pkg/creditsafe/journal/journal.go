// Package journal writes the connector run log. Every line goes to standard
// output and is appended to the log file. Status lines carry a bracketed tag
// ("[empty]", "[OK]", "[<country>-<regno>:<status>]") that downstream tools scrape.
package journal

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	// TagEmpty marks a run-level failure or a run with nothing to do.
	TagEmpty = "empty"
	// TagOK marks a saved report workbook.
	TagOK = "OK"
)

// CompanyTag builds the per-company tag body "<id>:<status>".
func CompanyTag(id, status string) string {
	return fmt.Sprintf("%s:%s", id, status)
}

// Journal is the run log.
type Journal struct {
	logger zerolog.Logger
	file   io.Closer
}

// New returns a journal writing to w only.
func New(w io.Writer, level zerolog.Level) *Journal {
	return &Journal{logger: newLogger(w, level)}
}

// Open returns a journal that mirrors every line to stdout and appends it to path.
func Open(path string, stdout io.Writer, level zerolog.Level) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Journal{
		logger: newLogger(io.MultiWriter(stdout, f), level),
		file:   f,
	}, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	return zerolog.New(out).Level(level)
}

// Logger exposes the underlying logger, e.g. for zerolog.Ctx in the provider client.
func (j *Journal) Logger() *zerolog.Logger {
	return &j.logger
}

// Info writes a free-text line.
func (j *Journal) Info(msg string) {
	j.logger.Info().Msg(msg)
}

// Tag writes a bare tag line.
func (j *Journal) Tag(tag string) {
	j.logger.Info().Msg("[" + tag + "]")
}

// Status writes a tag line followed by a human-readable line.
func (j *Journal) Status(tag, msg string) {
	j.Tag(tag)
	j.logger.Info().Msg(msg)
}

// Failure is the single funnel for failures: a tag line, then the reason at
// error level, both kept bare. Fields go on a separate debug line.
func (j *Journal) Failure(tag, msg string, fields map[string]string) {
	j.logger.Error().Msg("[" + tag + "]")
	j.logger.Error().Msg(msg)
	if len(fields) == 0 {
		return
	}
	ev := j.logger.Debug()
	for k, v := range fields {
		ev = ev.Str(k, v)
	}
	ev.Msg("failure")
}

// Close releases the log file, if any.
func (j *Journal) Close() error {
	if j.file == nil {
		return nil
	}
	return j.file.Close()
}
