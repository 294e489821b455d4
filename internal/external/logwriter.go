package external

import (
	"bytes"

	"github.com/charmbracelet/log"
)

// lineLogger forwards a child process stream to the logger one line at a
// time.
type lineLogger struct {
	logger *log.Logger
	stream string
	buf    bytes.Buffer
}

func newLineLogger(l *log.Logger, stream string) *lineLogger {
	return &lineLogger{logger: l, stream: stream}
}

func (w *lineLogger) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// incomplete line, keep it for the next write
			w.buf.Reset()
			w.buf.Write(line)
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

func (w *lineLogger) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.Bytes())
		w.buf.Reset()
	}
}

func (w *lineLogger) emit(line []byte) {
	text := string(bytes.TrimRight(line, "\r\n"))
	if text == "" {
		return
	}
	w.logger.Debug(text, "stream", w.stream)
}
