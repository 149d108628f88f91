package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestSpeedRegional(t *testing.T) {
	require.NoError(t, execute(t, "speed", "regional", "--region", "C", "--ari", "500"))

	err := execute(t, "speed", "regional", "--region", "Q", "--ari", "500")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wind region")
}

func TestSiteBatch_Workbook(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOWIND_OUTPUT_DIR", dir)

	input := filepath.Join(dir, "sites.csv")
	require.NoError(t, os.WriteFile(input, []byte(`name,region,terrain,height,design_life,importance_level,orientation
Depot,C,TC2,10,50 Years,2,0
Office,Q,TC3,12,50 Years,2,15
`), 0o644))

	require.NoError(t, execute(t, "site", "batch", "--file", input, "--xlsx", "results.xlsx"))

	f, err := excelize.OpenFile(filepath.Join(dir, "results.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sites")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestSpan(t *testing.T) {
	assert.Equal(t, "0.0-5.0 m", span(0, 5))
	assert.Equal(t, "> 30.0 m", span(30, 30))
	assert.Equal(t, "anywhere", span(0, math.Inf(1)))
}

func TestMaxOf(t *testing.T) {
	assert.Equal(t, 2.5, maxOf([]float64{1, 2.5, -3}))
}
