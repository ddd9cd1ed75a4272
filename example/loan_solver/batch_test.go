package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const scenarios = `
scenarios:
  - name: car
    rate: 6
    payment: 300
    periods: 36
  - name: payoff
    rate: 6
    payment: 300
    principal: 10000
  - name: interest only
    rate: 12
    payment: 10
    principal: 1000
  - name: too long
    rate: 12
    payment: 100
    periods: 360
  - name: ambiguous
    rate: 6
    payment: 300
    periods: 36
    principal: 10000
`

func TestRunBatch(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBatch(strings.NewReader(scenarios), &out))

	var results []map[string]interface{}
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		res := make(map[string]interface{})
		require.NoError(t, json.Unmarshal(sc.Bytes(), &res))
		results = append(results, res)
	}
	require.NoError(t, sc.Err())
	require.Len(t, results, 5)

	require.Equal(t, "car", results[0]["name"])
	require.Equal(t, "9861.3", results[0]["principal"])

	require.Equal(t, "payoff", results[1]["name"])
	require.InDelta(t, 36.556, results[1]["periods"], 1e-3)

	require.Contains(t, results[2]["error"], "payment must exceed first interest charge")
	require.Contains(t, results[3]["error"], "no solution")
	require.Contains(t, results[4]["error"], "not both")
}

func TestRunBatchRejectsUnknownFields(t *testing.T) {
	err := runBatch(strings.NewReader("scenarios:\n  - name: x\n    rat: 6\n"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestMoney(t *testing.T) {
	require.Equal(t, "9861.30", money(9861.303716631079))
	require.Equal(t, "0.00", money(0))
}
