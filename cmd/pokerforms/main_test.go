package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lox/pokerforms/internal/phh"
	"github.com/lox/pokerforms/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlobals(t *testing.T) *Globals {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"POKERFORMS_CONFIG", "POKERFORMS_VARIANT", "POKERFORMS_LOG_LEVEL", "POKERFORMS_SEED"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return &Globals{
		Config:   filepath.Join(dir, "missing.hcl"),
		EnvFile:  filepath.Join(dir, "missing.env"),
		LogLevel: "error",
	}
}

func seed(v int64) *int64 { return &v }

func TestGenerateJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := &GenerateCmd{Seed: seed(42), Format: "json", out: &out}
	require.NoError(t, cmd.Run(testGlobals(t)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	for _, name := range scenario.FieldNames {
		assert.Contains(t, got, name)
	}
	assert.Len(t, got["heroHand"], 8)
}

func TestGenerateIsReproducible(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		cmd := &GenerateCmd{Seed: seed(7), Format: "fields", BoardSize: "5", out: &out}
		require.NoError(t, cmd.Run(testGlobals(t)))
		return out.String()
	}
	first := run()
	assert.Equal(t, first, run())
	assert.Contains(t, first, "board=")
	assert.Contains(t, first, "potSize=")
}

func TestGenerateSeedFromEnv(t *testing.T) {
	g := testGlobals(t)
	t.Setenv("POKERFORMS_SEED", "7")

	var fromEnv bytes.Buffer
	require.NoError(t, (&GenerateCmd{Format: "fields", out: &fromEnv}).Run(g))

	var fromFlag bytes.Buffer
	require.NoError(t, (&GenerateCmd{Seed: seed(7), Format: "fields", out: &fromFlag}).Run(g))
	assert.Equal(t, fromFlag.String(), fromEnv.String())
}

func TestGenerateVariantAndBoardOverride(t *testing.T) {
	g := testGlobals(t)
	g.Variant = "legacy"

	var out bytes.Buffer
	cmd := &GenerateCmd{Seed: seed(1), Format: "phh", BoardSize: "3", out: &out}
	require.NoError(t, cmd.Run(g))

	text := out.String()
	assert.Contains(t, text, `variant = "PO"`)
	assert.Contains(t, text, `variant = "legacy"`)
	assert.Equal(t, 1, strings.Count(text, "d db "))

	g.Variant = "ghost"
	assert.Error(t, (&GenerateCmd{Seed: seed(1), Format: "text", out: &out}).Run(g))

	g.Variant = ""
	assert.Error(t, (&GenerateCmd{Seed: seed(1), Format: "text", BoardSize: "6", out: &out}).Run(g))
}

func TestGenerateTextDetails(t *testing.T) {
	var out bytes.Buffer
	cmd := &GenerateCmd{Seed: seed(3), Format: "text", Details: true, NoColor: true, out: &out}
	require.NoError(t, cmd.Run(testGlobals(t)))
	assert.Contains(t, out.String(), "Effective stack")
	assert.Contains(t, out.String(), "Pot-sized bets")
}

func TestBatchWritesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.phh")
	cmd := &BatchCmd{Count: 8, Workers: 3, Seed: seed(100), Out: path}
	require.NoError(t, cmd.Run(testGlobals(t)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	hands, err := phh.DecodeSession(f)
	require.NoError(t, err)
	require.Len(t, hands, 8)

	// The same seed exports the same ids.
	var again bytes.Buffer
	require.NoError(t, (&BatchCmd{Count: 8, Seed: seed(100), stdout: &again}).Run(testGlobals(t)))
	assert.Contains(t, again.String(), hands[7].HandID)

	var rendered bytes.Buffer
	render := &HandHistoryRenderCmd{File: path, Limit: 2, Details: true, out: &rendered}
	require.NoError(t, render.Run())
	assert.Contains(t, rendered.String(), "Hand 2")
	assert.NotContains(t, rendered.String(), "Hand 3")
}

func TestHandHistoryRenderErrors(t *testing.T) {
	assert.Error(t, (&HandHistoryRenderCmd{}).Run())
	assert.Error(t, (&HandHistoryRenderCmd{File: filepath.Join(t.TempDir(), "none.phh")}).Run())

	empty := filepath.Join(t.TempDir(), "empty.phh")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.Error(t, (&HandHistoryRenderCmd{File: empty}).Run())
}

func TestStatsReport(t *testing.T) {
	var out bytes.Buffer
	cmd := &StatsCmd{Trials: 52 * 100, Seed: seed(9), out: &out}
	require.NoError(t, cmd.Run(testGlobals(t)))

	report := out.String()
	assert.Contains(t, report, "5200 scenarios")
	assert.Contains(t, report, "uniform")
	assert.Contains(t, report, "Board sizes")

	assert.Error(t, (&StatsCmd{Trials: 0, out: &out}).Run(testGlobals(t)))
}

func TestLayout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&LayoutCmd{Button: 4, out: &out}).Run())
	assert.Contains(t, out.String(), "Button on seat 4")
	assert.Contains(t, out.String(), "Seat 3")

	assert.Error(t, (&LayoutCmd{Button: 9, out: &out}).Run())
}
