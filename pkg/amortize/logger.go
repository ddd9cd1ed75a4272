package amortize

import (
	"bytes"
	"io"
	"strconv"
	"sync"
)

// Logger receives key/value annotated events.
type Logger interface {
	KV(string, string) Logger
	Event(string)
}

const mutelog = mutelogger(0)

// LogMute discards everything.
func LogMute() Logger { return mutelog }

// LogJSON writes one JSON object per event.
func LogJSON(w io.Writer) Logger {
	return newKVLogger(w, func(buf *bytes.Buffer, keys, values []string) {
		buf.WriteRune('{')
		for i, k := range keys {
			if i != 0 {
				buf.WriteRune(',')
			}
			buf.WriteString(strconv.Quote(k))
			buf.WriteRune(':')
			buf.WriteString(strconv.Quote(values[i]))
		}
		buf.WriteString("}\n")
	})
}

// LogPretty writes tab separated key=value pairs, one line per event.
func LogPretty(w io.Writer) Logger {
	return newKVLogger(w, func(buf *bytes.Buffer, keys, values []string) {
		for i, k := range keys {
			if i != 0 {
				buf.WriteString("\t")
			}
			buf.WriteString(k)
			buf.WriteRune('=')
			buf.WriteString(strconv.Quote(values[i]))
		}
		buf.WriteRune('\n')
	})
}

func newKVLogger(w io.Writer, format func(buf *bytes.Buffer, keys, values []string)) Logger {
	var mu sync.Mutex
	bufpool := sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 0, 1<<10))
		},
	}
	return &kvlogger{
		encoder: func(keys, values []string) {
			buf := bufpool.Get().(*bytes.Buffer)
			buf.Reset()
			format(buf, keys, values)
			mu.Lock()
			_, _ = io.Copy(w, buf)
			mu.Unlock()
			bufpool.Put(buf)
		},
	}
}

type kvlogger struct {
	encoder func(keys, values []string)
	keys    []string
	values  []string
}

func (log *kvlogger) KV(k, v string) Logger {
	// full slice expressions so siblings derived from the same parent
	// never share a backing array
	n := len(log.keys)
	return &kvlogger{
		encoder: log.encoder,
		keys:    append(log.keys[:n:n], k),
		values:  append(log.values[:n:n], v),
	}
}

func (log *kvlogger) Event(msg string) {
	n := len(log.keys)
	log.encoder(
		append(log.keys[:n:n], "event"),
		append(log.values[:n:n], msg),
	)
}

type mutelogger uint8

func (l mutelogger) KV(_, _ string) Logger { return l }
func (mutelogger) Event(_ string)          {}

func kvFloat(log Logger, k string, v float64) Logger {
	return log.KV(k, strconv.FormatFloat(v, 'g', -1, 64))
}
