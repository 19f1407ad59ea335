package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume-scorer/internal/config"
	"github.com/jonathan/ats-resume-scorer/internal/parameters"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the scoring parameters",
	Long:  "List every enabled scoring parameter with its category, maximum score and required inputs.",
	RunE:  runParams,
}

var paramsJSON bool

func init() {
	paramsCmd.Flags().BoolVar(&paramsJSON, "json", false, "Print the catalog as JSON")

	rootCmd.AddCommand(paramsCmd)
}

func runParams(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return executeParams(cfg, paramsJSON, cmd.OutOrStdout())
}

type paramInfo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	MaxScore int      `json:"max_score"`
	Requires []string `json:"requires"`
}

func executeParams(cfg *config.Config, asJSON bool, out io.Writer) error {
	registry, err := parameters.NewRegistry(cfg.ParameterConfig())
	if err != nil {
		return fmt.Errorf("failed to build parameter registry: %w", err)
	}

	infos := make([]paramInfo, 0, registry.Len())
	total := 0
	for _, def := range registry.Definitions() {
		requires := make([]string, 0, len(def.Requires))
		for _, in := range def.Requires {
			requires = append(requires, string(in))
		}
		infos = append(infos, paramInfo{
			ID:       string(def.ID),
			Name:     def.Name,
			Category: string(def.Category),
			MaxScore: def.MaxScore,
			Requires: requires,
		})
		total += def.MaxScore
	}

	if asJSON {
		return writeJSON(infos, "", out)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCATEGORY\tMAX\tREQUIRES")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", info.ID, info.Category, info.MaxScore, strings.Join(info.Requires, ","))
	}
	_, _ = fmt.Fprintf(w, "\t\t%d\t(%d parameters)\n", total, len(infos))
	return w.Flush()
}
