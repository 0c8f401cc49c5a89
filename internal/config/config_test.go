package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "data.csv", c.DataFile)
	assert.Equal(t, ",", c.Delimiter)
	assert.Equal(t, ".", c.ExportDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.StrictCategories)
	assert.Equal(t, []float64{25, 50, 75}, c.Percentiles)
	assert.Equal(t, 20, c.MaxWarnings)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: from-file.csv\nexport_dir: out\n"), 0o644))
	t.Setenv("STROKELENS_DATA_FILE", "from-env.csv")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", c.DataFile)
	assert.Equal(t, "out", c.ExportDir)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{DataFile: "stroke.csv", Delimiter: ";", ExportDir: "exports", LogLevel: "debug", StrictCategories: true, Percentiles: []float64{10, 90}, MaxWarnings: 5}
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseDelimiter(t *testing.T) {
	cases := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"::", 0, true},
	}
	for _, c := range cases {
		got, err := ParseDelimiter(c.in)
		if c.wantErr {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestValidatePercentiles(t *testing.T) {
	assert.NoError(t, ValidatePercentiles([]float64{0, 25, 100}))
	assert.NoError(t, ValidatePercentiles(nil))
	for _, bad := range []float64{math.NaN(), -1, 100.5, math.Inf(1)} {
		assert.Error(t, ValidatePercentiles([]float64{50, bad}), "%v", bad)
	}
}

func TestLoadReplacesInvalidPercentiles(t *testing.T) {
	cases := []string{
		"percentiles: [.nan, 50]\n",
		"percentiles: [150]\n",
	}
	for _, body := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		c, err := Load(path)
		require.NoError(t, err, body)
		assert.Equal(t, []float64{25, 50, 75}, c.Percentiles, body)
	}
}
