package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/prompt"
)

func newTestConfig(t *testing.T, maxAttempts string) *config.ExplorerConfig {
	t.Helper()

	cfg, err := config.ParseConfig([]byte(`
data_dir: "../dataset/testdata"
page_size: 5
max_attempts: ` + maxAttempts + `
cities:
  chicago: {file: chicago.csv, has_demographics: true}
  new york: {file: new_york_city.csv, has_demographics: true}
  washington: {file: washington.csv, has_demographics: false}
`))
	require.NoError(t, err)
	return cfg
}

func runSession(t *testing.T, cfg *config.ExplorerConfig, input string) (string, error) {
	t.Helper()

	var output bytes.Buffer
	err := NewSession(cfg, strings.NewReader(input), &output).Run()
	return output.String(), err
}

func TestSession_Run_SingleExploration(t *testing.T) {
	t.Parallel()

	output, err := runSession(t, newTestConfig(t, "0"), "new york\nnone\nno\nno\n")
	require.NoError(t, err)

	headings := []string{
		"Calculating The Most Frequent Times of Travel...",
		"Calculating Trip Duration...",
		"Calculating The Most Popular Stations and Trip...",
		"Calculating User Stats...",
	}
	last := -1
	for _, heading := range headings {
		idx := strings.Index(output, heading)
		require.GreaterOrEqual(t, idx, 0, heading)
		assert.Greater(t, idx, last, "%s printed out of order", heading)
		last = idx
	}

	assert.Contains(t, output, "The Total Travel Time (sec): 600\n")
	assert.Contains(t, output, "The Average Travel Time (sec): 300\n")
	assert.Contains(t, output, "The Counts By Gender Type Are:")
	assert.True(t, strings.HasSuffix(output, ClosingMessage+"\n"))
}

func TestSession_Run_Restart(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"Washington", "day", "monday", "yes", "no", "YES",
		"chicago", "month", "june", "no", "No",
	}, "\n") + "\n"

	output, err := runSession(t, newTestConfig(t, "0"), input)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(output, "Calculating User Stats..."))
	assert.Equal(t, 1, strings.Count(output, "The Counts By Gender Type Are:"))
	assert.Contains(t, output, "The Total Travel Time (sec): 1440.75\n")
	assert.Contains(t, output, "14th & Belmont St NW")
	assert.Equal(t, 1, strings.Count(output, ClosingMessage))
}

func TestSession_Run_InputClosed(t *testing.T) {
	t.Parallel()

	output, err := runSession(t, newTestConfig(t, "0"), "chicago\n")
	require.NoError(t, err)
	assert.Contains(t, output, ClosingMessage)
	assert.NotContains(t, output, "Calculating")
}

func TestSession_Run_TooManyAttempts(t *testing.T) {
	t.Parallel()

	_, err := runSession(t, newTestConfig(t, "1"), "boston\n")
	assert.ErrorIs(t, err, prompt.ErrTooManyAttempts)
}

func TestSession_Run_LoadError(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t, "0")
	cfg.Cities["chicago"] = config.CityConfig{File: "missing_column.csv", HasDemographics: true}

	output, err := runSession(t, cfg, "chicago\nnone\n")
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
	assert.NotContains(t, output, ClosingMessage)
}
