package amortize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogPretty(t *testing.T) {
	var buf bytes.Buffer
	log := LogPretty(&buf).KV("loan", "car")
	log.KV("period", "1").Event("paid")
	log.KV("period", "2").Event("paid")

	require.Equal(t,
		"loan=\"car\"\tperiod=\"1\"\tevent=\"paid\"\n"+
			"loan=\"car\"\tperiod=\"2\"\tevent=\"paid\"\n",
		buf.String())
}

func TestLogJSON(t *testing.T) {
	var buf bytes.Buffer
	kvFloat(LogJSON(&buf), "rate", 0.005).Event("start")
	require.Equal(t, `{"rate":"0.005","event":"start"}`+"\n", buf.String())
}

func TestLogMute(t *testing.T) {
	require.NotPanics(t, func() {
		LogMute().KV("a", "b").Event("nothing")
	})
}
