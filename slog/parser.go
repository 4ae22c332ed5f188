// Package slog provides log/slog decorators for embedkit services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/embedkit"
)

// Ensure LoggingParser implements embedkit.Parser.
var _ embedkit.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   embedkit.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next embedkit.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs input size and duration.
func (p *LoggingParser) Parse(r io.Reader) (doc embedkit.Document, err error) {
	cr := &countingReader{r: r}
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", cr.n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(cr)
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
