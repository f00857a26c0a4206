package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPhaseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wonPhase":"Fechado, Apólice emitida","lostPhaseId":"338889931","valueField":"Prêmio"}`), 0o600))

	phaseConfig, err := loadPhaseConfig(path)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseConfig{
		WonPhase:    "Fechado, Apólice emitida",
		LostPhaseID: "338889931",
		ValueField:  "Prêmio",
	}, phaseConfig)
}

func TestLoadPhaseConfig_Errors(t *testing.T) {
	phaseConfig, err := loadPhaseConfig("")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseConfig{}, phaseConfig)

	_, err = loadPhaseConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	_, err = loadPhaseConfig(path)
	assert.Error(t, err)
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printJSON(&out, domain.DealsDebug{PhasesFound: 2, TotalRaw: 7, FilteredCount: 5}))

	assert.JSONEq(t, `{"phasesFound":2,"totalRaw":7,"filteredCount":5}`, out.String())
}
