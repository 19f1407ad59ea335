package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/ats-resume-scorer/internal/config"
	"github.com/jonathan/ats-resume-scorer/internal/keywords"
	"github.com/jonathan/ats-resume-scorer/internal/observability"
	"github.com/jonathan/ats-resume-scorer/internal/schemas"
	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// loadRuntime loads configuration and builds the logger. Logging flags
// switch JSON or debug output on even when the config leaves them off.
func loadRuntime(path string, jsonOutput, debug bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger, err := observability.NewLogger(jsonOutput || cfg.Logging.JSON, debug || cfg.Logging.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}

// loadDictionary returns the embedded keyword dictionary, or the one at
// path when set.
func loadDictionary(path string) (*keywords.Dictionary, error) {
	if path == "" {
		return keywords.LoadEmbedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword dictionary: %w", err)
	}
	return keywords.NewDictionary(data)
}

// readResume loads a résumé file, checking it against the schema and the
// struct constraints.
func readResume(path string) (*types.ResumeSignal, error) {
	data, err := readInput(path, schemas.ResumeSignal)
	if err != nil {
		return nil, err
	}
	var resume types.ResumeSignal
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume: %w", err)
	}
	return &resume, nil
}

// readJob loads a job requirement file. An empty path means no job.
func readJob(path string) (*types.JobRequirement, error) {
	if path == "" {
		return nil, nil
	}
	data, err := readInput(path, schemas.JobRequirement)
	if err != nil {
		return nil, err
	}
	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job requirement: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job requirement: %w", err)
	}
	return &job, nil
}

func readInput(path, schema string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if err := schemas.Validate(schema, data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("%s does not match schema: %w", path, err)
		}
		return nil, fmt.Errorf("could not validate %s: %w", path, err)
	}
	return data, nil
}

// writeJSON writes v as indented JSON to path, or to the fallback writer
// when path is empty.
func writeJSON(v any, path string, fallback io.Writer) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err = fallback.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
