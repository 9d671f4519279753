package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	RunID     string  `json:"run_id"`
	Tolerance float64 `json:"tolerance"`
	Total     int     `json:"total"`
	Passed    int     `json:"passed"`
	Failed    int     `json:"failed"`
}

func runArgs(t *testing.T, args ...string) (int, report, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	var r report
	if stdout.Len() > 0 {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &r), stdout.String())
	}
	return code, r, stderr.String()
}

func TestRun_Passing(t *testing.T) {
	code, r, logs := runArgs(t, "-scenarios", "../../internal/scenario/testdata/basic.yaml", "-workers", "2")
	require.Equal(t, exitOK, code, logs)
	assert.Equal(t, 12, r.Total)
	assert.Equal(t, 12, r.Passed)
	assert.NotEmpty(t, r.RunID)
	assert.Contains(t, logs, `"run complete"`)
	assert.NotContains(t, logs, `"scenario passed"`, "debug entries are off at info")
}

func TestRun_Failing(t *testing.T) {
	code, r, logs := runArgs(t, "-scenarios", "testdata/failing.yaml", "-log-level", "debug")
	assert.Equal(t, exitFailed, code)
	assert.Equal(t, 1, r.Failed)
	assert.Contains(t, logs, `"scenario failed"`)
}

func TestRun_ToleranceFlag(t *testing.T) {
	code, r, _ := runArgs(t, "-scenarios", "../../internal/scenario/testdata/basic.yaml", "-tolerance", "1e-7")
	require.Equal(t, exitOK, code)
	assert.Equal(t, 1e-7, r.Tolerance)
}

func TestRun_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing scenarios flag", nil},
		{"unknown flag", []string{"-scenarios", "x.yaml", "-bogus"}},
		{"extra argument", []string{"-scenarios", "x.yaml", "extra"}},
		{"zero workers", []string{"-scenarios", "x.yaml", "-workers", "0"}},
		{"negative tolerance", []string{"-scenarios", "x.yaml", "-tolerance", "-1"}},
		{"bad log level", []string{"-scenarios", "x.yaml", "-log-level", "loud"}},
		{"missing file", []string{"-scenarios", "testdata/absent.yaml"}},
		{"invalid file", []string{"-scenarios", "testdata/invalid.yaml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, logs := runArgs(t, tc.args...)
			assert.Equal(t, exitInvalid, code)
			assert.NotEmpty(t, logs)
		})
	}
}
