package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-resume-scorer/internal/config"
	"github.com/jonathan/ats-resume-scorer/internal/export"
	"github.com/jonathan/ats-resume-scorer/internal/observability"
	"github.com/jonathan/ats-resume-scorer/internal/parameters"
	"github.com/jonathan/ats-resume-scorer/internal/parsing"
	"github.com/jonathan/ats-resume-scorer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a parsed résumé",
	Long:  "Score a parsed résumé JSON against the parameter catalog, optionally using a job requirement JSON for keyword matching.",
	RunE:  runScore,
}

type scoreOptions struct {
	resumePath string
	jobPath    string
	level      string
	role       string
	outPath    string
	xlsxPath   string
	verbose    bool
}

var scoreOpts scoreOptions

func init() {
	scoreCmd.Flags().StringVarP(&scoreOpts.resumePath, "resume", "r", "", "Path to resume signal JSON")
	scoreCmd.Flags().StringVarP(&scoreOpts.jobPath, "job", "j", "", "Path to job requirement JSON (role defaults are used when omitted)")
	scoreCmd.Flags().StringVarP(&scoreOpts.level, "level", "l", "", "Experience level: beginner, intermediary or senior")
	scoreCmd.Flags().StringVar(&scoreOpts.role, "role", "", "Target role for default keywords")
	scoreCmd.Flags().StringVarP(&scoreOpts.outPath, "out", "o", "", "Path to output JSON file (stdout when omitted)")
	scoreCmd.Flags().StringVar(&scoreOpts.xlsxPath, "xlsx", "", "Also write an xlsx report to this path")
	scoreCmd.Flags().BoolVarP(&scoreOpts.verbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("level")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime(configPath, jsonLogs, debugLogs)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return executeScore(cmd.Context(), scoreOpts, cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func executeScore(ctx context.Context, opts scoreOptions, cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	level, err := parsing.NormalizeLevel(opts.level)
	if err != nil {
		return err
	}

	resume, err := readResume(opts.resumePath)
	if err != nil {
		return err
	}
	job, err := readJob(opts.jobPath)
	if err != nil {
		return err
	}

	registry, err := parameters.NewRegistry(cfg.ParameterConfig())
	if err != nil {
		return fmt.Errorf("failed to build parameter registry: %w", err)
	}
	dictionary, err := loadDictionary(cfg.Keywords.DictionaryPath)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))
	logger.Info("scoring resume",
		zap.String("resume", opts.resumePath),
		zap.String("level", string(level)),
		zap.String("role", opts.role),
		zap.Bool("has_job", job != nil),
		zap.Int("parameters", registry.Len()),
	)

	engine := scoring.NewEngine(registry, dictionary,
		scoring.WithLogger(logger),
		scoring.WithTimeout(cfg.Engine.Timeout),
		scoring.WithWorkers(cfg.Engine.Workers),
		scoring.WithTopN(cfg.Engine.TopN),
		scoring.WithCountErrors(cfg.Engine.CountErrorsInDenominator),
	)

	start := time.Now()
	result, err := engine.Score(ctx, scoring.Request{
		Resume: resume,
		Job:    job,
		Level:  level,
		Role:   opts.role,
	})
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	logger.Info("scoring complete",
		zap.Float64("score", result.NormalizedScore),
		zap.String("rating", string(result.Rating)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := writeJSON(result, opts.outPath, stdout); err != nil {
		return err
	}

	if opts.xlsxPath != "" {
		written, err := export.WriteReport(result, export.Meta{
			RunID:       runID,
			GeneratedAt: time.Now(),
			ResumePath:  opts.resumePath,
			JobPath:     opts.jobPath,
		}, opts.xlsxPath)
		if err != nil {
			return err
		}
		logger.Info("wrote xlsx report", zap.String("path", written))
	}

	if opts.verbose {
		observability.NewPrinter(stderr).PrintScoringResult(result)
	}
	return nil
}
