package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-resume-scorer/internal/parameters"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, 5, cfg.Engine.TopN)
	assert.True(t, cfg.Engine.CountErrorsInDenominator)
	assert.Equal(t, 0.8, cfg.Keywords.SeniorTarget)
	assert.Equal(t, 3, cfg.Repetition.Threshold)
	assert.Equal(t, 6, cfg.Gaps.MonthsPerPenalty)
	assert.Contains(t, cfg.JobHopping.ExemptTitles, "intern")
	assert.Empty(t, cfg.DisabledParameters)
	assert.False(t, cfg.Logging.JSON)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, "scorer.yaml", `
engine:
  timeout: 500ms
  workers: 4
  count_errors_in_denominator: false
keywords:
  senior_target: 0.9
gaps:
  floor_months: 6
disabled_parameters:
  - page_count
logging:
  json: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Engine.Timeout)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.False(t, cfg.Engine.CountErrorsInDenominator)
	assert.Equal(t, 0.9, cfg.Keywords.SeniorTarget)
	assert.Equal(t, 0.6, cfg.Keywords.BeginnerTarget)
	assert.Equal(t, 6, cfg.Gaps.FloorMonths)
	assert.Equal(t, 6, cfg.Gaps.MonthsPerPenalty)
	assert.Equal(t, []string{"page_count"}, cfg.DisabledParameters)
	assert.True(t, cfg.Logging.JSON)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeConfig(t, "scorer.json", `{"engine": {"top_n": 3}, "repetition": {"threshold": 4}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Engine.TopN)
	assert.Equal(t, 4, cfg.Repetition.Threshold)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RESUME_SCORER_ENGINE_TIMEOUT", "750ms")
	t.Setenv("RESUME_SCORER_ENGINE_WORKERS", "2")
	t.Setenv("RESUME_SCORER_DISABLED_PARAMETERS", "page_count,buzzwords")
	t.Setenv("RESUME_SCORER_LOGGING_DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Engine.Timeout)
	assert.Equal(t, 2, cfg.Engine.Workers)
	assert.Equal(t, []string{"page_count", "buzzwords"}, cfg.DisabledParameters)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	path := writeConfig(t, "scorer.yaml", "engine:\n  top_n: 3\n")
	t.Setenv("RESUME_SCORER_ENGINE_TOP_N", "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Engine.TopN)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Nil(t, cfg)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "scorer.json", `{ invalid json }`)

	cfg, err := Load(path)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "scorer.yaml", "keywords:\n  senior_target: 1.5\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'keywords.senior_target' must be in (0, 1]")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"zero timeout", func(c *Config) { c.Engine.Timeout = 0 }, "'engine.timeout' must be positive"},
		{"negative workers", func(c *Config) { c.Engine.Workers = -1 }, "'engine.workers' must be non-negative"},
		{"zero top n", func(c *Config) { c.Engine.TopN = 0 }, "'engine.top_n' must be positive"},
		{"preferred target", func(c *Config) { c.Keywords.PreferredTarget = 0 }, "'keywords.preferred_target' must be in (0, 1]"},
		{"missing dictionary", func(c *Config) { c.Keywords.DictionaryPath = "/nonexistent/roles.json" }, "keyword dictionary not found"},
		{"gap floor", func(c *Config) { c.Gaps.FloorMonths = 0 }, "'gaps' values must be positive"},
		{"tenure", func(c *Config) { c.JobHopping.MinTenureMonths = 0 }, "'job_hopping' values must be positive"},
		{"repetition", func(c *Config) { c.Repetition.Threshold = 1 }, "'repetition.threshold' must be at least 2"},
		{"balance share", func(c *Config) { c.Balance.SkillsMaxShare = 1.2 }, "'section_balance' shares must be in [0, 1]"},
		{"balance penalty", func(c *Config) { c.Balance.MaxPenalty = -1 }, "'section_balance.max_penalty' must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	valid := Default()
	assert.NoError(t, valid.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Engine: EngineConfig{TopN: 9}}

	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, 9, merged.Engine.TopN)
	assert.Equal(t, 2*time.Second, merged.Engine.Timeout)
	assert.Zero(t, cfg.Engine.Timeout, "receiver is not modified")
}

func TestParameterConfig(t *testing.T) {
	cfg := Default()
	cfg.Keywords.SeniorTarget = 0.75
	cfg.Repetition.Threshold = 4
	cfg.DisabledParameters = []string{" page_count ", ""}

	pc := cfg.ParameterConfig()

	assert.Equal(t, 0.75, pc.RequiredKeywordTargets[types.LevelSenior])
	assert.Equal(t, 4, pc.RepetitionThreshold)
	assert.Equal(t, []types.ParameterID{parameters.PageCount}, pc.Disabled)
	assert.Equal(t, 1, pc.Balance.ViolationPenalty)

	registry, err := parameters.NewRegistry(pc)
	require.NoError(t, err)
	assert.Equal(t, 23, registry.Len())
}

func TestConfigurationError(t *testing.T) {
	err := &ConfigurationError{Message: "bad", Cause: os.ErrPermission}

	assert.Equal(t, "config error: bad: "+os.ErrPermission.Error(), err.Error())
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, "config error: bad", (&ConfigurationError{Message: "bad"}).Error())
}
