package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-resume-scorer/internal/config"
	"github.com/jonathan/ats-resume-scorer/internal/observability"
	"github.com/jonathan/ats-resume-scorer/internal/parsing"
	"github.com/jonathan/ats-resume-scorer/internal/schemas"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract a job requirement from a job posting",
	Long:  "Extract required and preferred keywords from an HTML or plain-text job posting using the role's keyword vocabulary.",
	RunE:  runExtractJob,
}

type extractOptions struct {
	postingPath string
	role        string
	level       string
	outPath     string
	verbose     bool
}

var extractOpts extractOptions

func init() {
	extractJobCmd.Flags().StringVarP(&extractOpts.postingPath, "posting", "p", "", "Path to job posting (.html, .htm or plain text)")
	extractJobCmd.Flags().StringVar(&extractOpts.role, "role", "", "Role whose vocabulary is matched")
	extractJobCmd.Flags().StringVarP(&extractOpts.level, "level", "l", "", "Fill required keywords from role defaults at this level when none are found")
	extractJobCmd.Flags().StringVarP(&extractOpts.outPath, "out", "o", "", "Path to output JSON file (stdout when omitted)")
	extractJobCmd.Flags().BoolVarP(&extractOpts.verbose, "verbose", "v", false, "Print extracted keywords to stderr")

	_ = extractJobCmd.MarkFlagRequired("posting")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime(configPath, jsonLogs, debugLogs)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return executeExtractJob(extractOpts, cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func executeExtractJob(opts extractOptions, cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) error {
	var level types.ExperienceLevel
	if opts.level != "" {
		l, err := parsing.NormalizeLevel(opts.level)
		if err != nil {
			return err
		}
		level = l
	}

	content, err := os.ReadFile(opts.postingPath)
	if err != nil {
		return fmt.Errorf("failed to read posting: %w", err)
	}

	var posting *parsing.Posting
	switch strings.ToLower(filepath.Ext(opts.postingPath)) {
	case ".html", ".htm":
		posting, err = parsing.ParsePostingHTML(string(content))
	default:
		posting, err = parsing.ParsePostingText(string(content))
	}
	if err != nil {
		return fmt.Errorf("failed to parse posting: %w", err)
	}

	dictionary, err := loadDictionary(cfg.Keywords.DictionaryPath)
	if err != nil {
		return err
	}

	role := dictionary.ResolveRole(opts.role)
	req := dictionary.ExtractRequirement(posting, role)
	logger.Info("extracted job keywords",
		zap.String("title", observability.TruncateForLog(posting.Title, 80)),
		zap.String("role", role),
		zap.Int("required", len(req.RequiredKeywords)),
		zap.Int("preferred", len(req.PreferredKeywords)),
	)

	if len(req.RequiredKeywords) == 0 && level != "" {
		defaults, _ := dictionary.Lookup(role, level)
		req.RequiredKeywords = defaults.RequiredKeywords
		req = parsing.NormalizeJobRequirement(req)
		logger.Warn("no required keywords found in posting, using role defaults",
			zap.String("role", role),
			zap.String("level", string(level)),
		)
	}

	if err := writeJSON(req, opts.outPath, stdout); err != nil {
		return err
	}
	if opts.outPath != "" {
		data, err := os.ReadFile(opts.outPath)
		if err != nil {
			return fmt.Errorf("failed to re-read output: %w", err)
		}
		if err := schemas.Validate(schemas.JobRequirement, data); err != nil {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
	}

	if opts.verbose {
		observability.NewPrinter(stderr).PrintJobRequirement(req)
	}
	return nil
}
