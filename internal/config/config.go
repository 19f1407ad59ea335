// Package config provides configuration loading and validation for the scorer.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jonathan/ats-resume-scorer/internal/analysis"
	"github.com/jonathan/ats-resume-scorer/internal/parameters"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// EnvPrefix prefixes every environment override, e.g. RESUME_SCORER_ENGINE_TIMEOUT.
const EnvPrefix = "RESUME_SCORER"

// Config is the full scorer configuration. Every field has a default.
type Config struct {
	Engine             EngineConfig     `mapstructure:"engine"`
	Keywords           KeywordConfig    `mapstructure:"keywords"`
	Gaps               GapConfig        `mapstructure:"gaps"`
	JobHopping         JobHoppingConfig `mapstructure:"job_hopping"`
	Repetition         RepetitionConfig `mapstructure:"repetition"`
	Balance            BalanceConfig    `mapstructure:"section_balance"`
	DisabledParameters []string         `mapstructure:"disabled_parameters"`
	Logging            LoggingConfig    `mapstructure:"logging"`
}

// EngineConfig tunes the orchestrator.
type EngineConfig struct {
	Timeout                  time.Duration `mapstructure:"timeout"`      // Per-parameter evaluation bound
	Workers                  int           `mapstructure:"workers"`      // Concurrent evaluations, 0 = CPU count
	TopN                     int           `mapstructure:"top_n"`        // Strengths and weaknesses reported
	CountErrorsInDenominator bool          `mapstructure:"count_errors_in_denominator"`
}

// KeywordConfig holds keyword coverage targets and an optional dictionary override.
type KeywordConfig struct {
	BeginnerTarget     float64 `mapstructure:"beginner_target"`
	IntermediaryTarget float64 `mapstructure:"intermediary_target"`
	SeniorTarget       float64 `mapstructure:"senior_target"`
	PreferredTarget    float64 `mapstructure:"preferred_target"`
	DictionaryPath     string  `mapstructure:"dictionary_path"` // JSON file replacing the embedded dictionary
}

// GapConfig mirrors analysis.GapConfig.
type GapConfig struct {
	FloorMonths      int `mapstructure:"floor_months"`
	MonthsPerPenalty int `mapstructure:"months_per_penalty"`
	MaxPenalty       int `mapstructure:"max_penalty"`
}

// JobHoppingConfig mirrors analysis.JobHoppingConfig.
type JobHoppingConfig struct {
	MinTenureMonths int      `mapstructure:"min_tenure_months"`
	MaxPenalty      int      `mapstructure:"max_penalty"`
	ExemptTitles    []string `mapstructure:"exempt_titles"`
}

// RepetitionConfig sets when a leading verb counts as overused.
type RepetitionConfig struct {
	Threshold int `mapstructure:"threshold"`
}

// BalanceConfig mirrors analysis.BalanceConfig.
type BalanceConfig struct {
	ExperienceMinShare float64 `mapstructure:"experience_min_share"`
	SkillsMaxShare     float64 `mapstructure:"skills_max_share"`
	SummaryMaxShare    float64 `mapstructure:"summary_max_share"`
	MaxPenalty         int     `mapstructure:"max_penalty"`
}

// LoggingConfig selects the log encoder and level.
type LoggingConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Default returns the standard configuration.
func Default() Config {
	p := parameters.DefaultConfig()
	return Config{
		Engine: EngineConfig{
			Timeout:                  2 * time.Second,
			Workers:                  0,
			TopN:                     5,
			CountErrorsInDenominator: true,
		},
		Keywords: KeywordConfig{
			BeginnerTarget:     p.RequiredKeywordTargets[types.LevelBeginner],
			IntermediaryTarget: p.RequiredKeywordTargets[types.LevelIntermediary],
			SeniorTarget:       p.RequiredKeywordTargets[types.LevelSenior],
			PreferredTarget:    p.PreferredKeywordTarget,
		},
		Gaps: GapConfig{
			FloorMonths:      p.Gaps.FloorMonths,
			MonthsPerPenalty: p.Gaps.MonthsPerPenalty,
			MaxPenalty:       p.Gaps.MaxPenalty,
		},
		JobHopping: JobHoppingConfig{
			MinTenureMonths: p.JobHopping.MinTenureMonths,
			MaxPenalty:      p.JobHopping.MaxPenalty,
			ExemptTitles:    p.JobHopping.ExemptTitles,
		},
		Repetition: RepetitionConfig{Threshold: p.RepetitionThreshold},
		Balance: BalanceConfig{
			ExperienceMinShare: p.Balance.ExperienceMinShare,
			SkillsMaxShare:     p.Balance.SkillsMaxShare,
			SummaryMaxShare:    p.Balance.SummaryMaxShare,
			MaxPenalty:         p.Balance.MaxPenalty,
		},
		DisabledParameters: []string{},
	}
}

// Load reads configuration from an optional YAML, JSON or TOML file and
// RESUME_SCORER_* environment variables, on top of the defaults. An empty
// path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, &ConfigurationError{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigurationError{Message: "failed to parse config file", Cause: err}
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           &cfg,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, &ConfigurationError{Message: "failed to create config decoder", Cause: err}
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, &ConfigurationError{Message: "failed to decode config", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so that environment overrides apply
// even when no config file mentions the key.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("engine.timeout", d.Engine.Timeout.String())
	v.SetDefault("engine.workers", d.Engine.Workers)
	v.SetDefault("engine.top_n", d.Engine.TopN)
	v.SetDefault("engine.count_errors_in_denominator", d.Engine.CountErrorsInDenominator)
	v.SetDefault("keywords.beginner_target", d.Keywords.BeginnerTarget)
	v.SetDefault("keywords.intermediary_target", d.Keywords.IntermediaryTarget)
	v.SetDefault("keywords.senior_target", d.Keywords.SeniorTarget)
	v.SetDefault("keywords.preferred_target", d.Keywords.PreferredTarget)
	v.SetDefault("keywords.dictionary_path", d.Keywords.DictionaryPath)
	v.SetDefault("gaps.floor_months", d.Gaps.FloorMonths)
	v.SetDefault("gaps.months_per_penalty", d.Gaps.MonthsPerPenalty)
	v.SetDefault("gaps.max_penalty", d.Gaps.MaxPenalty)
	v.SetDefault("job_hopping.min_tenure_months", d.JobHopping.MinTenureMonths)
	v.SetDefault("job_hopping.max_penalty", d.JobHopping.MaxPenalty)
	v.SetDefault("job_hopping.exempt_titles", d.JobHopping.ExemptTitles)
	v.SetDefault("repetition.threshold", d.Repetition.Threshold)
	v.SetDefault("section_balance.experience_min_share", d.Balance.ExperienceMinShare)
	v.SetDefault("section_balance.skills_max_share", d.Balance.SkillsMaxShare)
	v.SetDefault("section_balance.summary_max_share", d.Balance.SummaryMaxShare)
	v.SetDefault("section_balance.max_penalty", d.Balance.MaxPenalty)
	v.SetDefault("disabled_parameters", d.DisabledParameters)
	v.SetDefault("logging.json", d.Logging.JSON)
	v.SetDefault("logging.debug", d.Logging.Debug)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Engine.Timeout <= 0 {
		return &ConfigurationError{Message: "'engine.timeout' must be positive"}
	}
	if c.Engine.Workers < 0 {
		return &ConfigurationError{Message: "'engine.workers' must be non-negative"}
	}
	if c.Engine.TopN <= 0 {
		return &ConfigurationError{Message: "'engine.top_n' must be positive"}
	}
	for name, target := range map[string]float64{
		"keywords.beginner_target":     c.Keywords.BeginnerTarget,
		"keywords.intermediary_target": c.Keywords.IntermediaryTarget,
		"keywords.senior_target":       c.Keywords.SeniorTarget,
		"keywords.preferred_target":    c.Keywords.PreferredTarget,
	} {
		if target <= 0 || target > 1 {
			return &ConfigurationError{Message: fmt.Sprintf("'%s' must be in (0, 1]", name)}
		}
	}
	if c.Keywords.DictionaryPath != "" {
		if _, err := os.Stat(c.Keywords.DictionaryPath); os.IsNotExist(err) {
			return &ConfigurationError{Message: fmt.Sprintf("keyword dictionary not found: %s", c.Keywords.DictionaryPath)}
		}
	}
	if c.Gaps.FloorMonths < 1 || c.Gaps.MonthsPerPenalty < 1 || c.Gaps.MaxPenalty < 0 {
		return &ConfigurationError{Message: "'gaps' values must be positive"}
	}
	if c.JobHopping.MinTenureMonths < 1 || c.JobHopping.MaxPenalty < 0 {
		return &ConfigurationError{Message: "'job_hopping' values must be positive"}
	}
	if c.Repetition.Threshold < 2 {
		return &ConfigurationError{Message: "'repetition.threshold' must be at least 2"}
	}
	for _, share := range []float64{c.Balance.ExperienceMinShare, c.Balance.SkillsMaxShare, c.Balance.SummaryMaxShare} {
		if share < 0 || share > 1 {
			return &ConfigurationError{Message: "'section_balance' shares must be in [0, 1]"}
		}
	}
	if c.Balance.MaxPenalty < 0 {
		return &ConfigurationError{Message: "'section_balance.max_penalty' must be non-negative"}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued engine fields
// filled from defaults. CLI flags use it to fall back to file values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Engine.Timeout == 0 {
		result.Engine.Timeout = defaults.Engine.Timeout
	}
	if result.Engine.Workers == 0 {
		result.Engine.Workers = defaults.Engine.Workers
	}
	if result.Engine.TopN == 0 {
		result.Engine.TopN = defaults.Engine.TopN
	}
	if result.Keywords.DictionaryPath == "" {
		result.Keywords.DictionaryPath = defaults.Keywords.DictionaryPath
	}

	// Bool fields cannot distinguish unset from false, so they are not merged

	return result
}

// ParameterConfig converts the configuration into parameter calibration.
func (c *Config) ParameterConfig() parameters.Config {
	disabled := make([]types.ParameterID, 0, len(c.DisabledParameters))
	for _, id := range c.DisabledParameters {
		if id = strings.TrimSpace(id); id != "" {
			disabled = append(disabled, types.ParameterID(id))
		}
	}
	balance := analysis.DefaultBalanceConfig()
	balance.ExperienceMinShare = c.Balance.ExperienceMinShare
	balance.SkillsMaxShare = c.Balance.SkillsMaxShare
	balance.SummaryMaxShare = c.Balance.SummaryMaxShare
	balance.MaxPenalty = c.Balance.MaxPenalty

	return parameters.Config{
		RequiredKeywordTargets: map[types.ExperienceLevel]float64{
			types.LevelBeginner:     c.Keywords.BeginnerTarget,
			types.LevelIntermediary: c.Keywords.IntermediaryTarget,
			types.LevelSenior:       c.Keywords.SeniorTarget,
		},
		PreferredKeywordTarget: c.Keywords.PreferredTarget,
		RepetitionThreshold:    c.Repetition.Threshold,
		Gaps: analysis.GapConfig{
			FloorMonths:      c.Gaps.FloorMonths,
			MonthsPerPenalty: c.Gaps.MonthsPerPenalty,
			MaxPenalty:       c.Gaps.MaxPenalty,
		},
		JobHopping: analysis.JobHoppingConfig{
			MinTenureMonths: c.JobHopping.MinTenureMonths,
			MaxPenalty:      c.JobHopping.MaxPenalty,
			ExemptTitles:    c.JobHopping.ExemptTitles,
		},
		Balance:  balance,
		Disabled: disabled,
	}
}
