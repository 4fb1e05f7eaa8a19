package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"volt/internal/diagfmt"
	"volt/internal/dialect"
	"volt/internal/driver"
	"volt/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.js|directory>",
	Short: "Parse a JavaScript source file or directory",
	Long: `Parse analyzes a source file (or every *.js/*.jsx/*.mjs/*.cjs file in a
directory) and reports diagnostics. Use --ast to dump the syntax tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	parseCmd.Flags().Bool("ast", false, "dump the syntax tree to stdout")
	parseCmd.Flags().StringSlice("dialect", nil, "enable a grammar dialect (jsx|typeanno|decorators|pipeline), repeatable")
	parseCmd.Flags().String("source-type", "", "force source type (module|script), default infers from extension")
	parseCmd.Flags().Bool("allow-return-outside", false, "permit return statements at the top level")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().Bool("cache", false, "reuse cached diagnostics for unchanged files")
	parseCmd.Flags().String("ui", "auto", "interactive progress display for directories (auto|on|off)")
}

// buildParseConfig собирает конфиг драйвера: значения из volt.toml, затем
// явные флаги поверх.
func buildParseConfig(cmd *cobra.Command, target string) (driver.Config, error) {
	cfg := driver.Config{AutoJSX: true}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return cfg, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	cfg.MaxDiagnostics = maxDiagnostics

	startDir := target
	if st, statErr := os.Stat(target); statErr == nil && !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	manifest, found, err := loadProjectManifest(startDir)
	if err != nil {
		return cfg, err
	}
	if found {
		pc := manifest.Config.Parse
		cfg.SourceType = pc.SourceType
		if len(pc.Dialects) > 0 {
			set, err := dialect.ParseSet(pc.Dialects)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", manifest.Path, err)
			}
			cfg.Dialects = set
		}
		if pc.MaxDiagnostics > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			cfg.MaxDiagnostics = pc.MaxDiagnostics
		}
	}

	if cmd.Flags().Changed("source-type") {
		cfg.SourceType, _ = cmd.Flags().GetString("source-type")
	}
	if names, _ := cmd.Flags().GetStringSlice("dialect"); len(names) > 0 {
		set, err := dialect.ParseSet(names)
		if err != nil {
			return cfg, err
		}
		cfg.Dialects = set
	}
	cfg.AllowReturnOutsideFunction, _ = cmd.Flags().GetBool("allow-return-outside")
	return cfg, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	dumpTree, err := cmd.Flags().GetBool("ast")
	if err != nil {
		return fmt.Errorf("failed to get ast flag: %w", err)
	}

	cfg, err := buildParseConfig(cmd, filePath)
	if err != nil {
		return err
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		return runParseFile(cmd, filePath, cfg, format, dumpTree)
	}
	return runParseDir(cmd, filePath, cfg, format, dumpTree)
}

func runParseFile(cmd *cobra.Command, filePath string, cfg driver.Config, format string, dumpTree bool) error {
	result, err := driver.Parse(filePath, cfg)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	switch format {
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	default:
		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			opts := diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				Context:   2,
				ShowNotes: true,
				ShowHints: true,
			}
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		}
	}

	if dumpTree && result.AST != nil {
		diagfmt.DumpAST(os.Stdout, result.AST, result.FileSet)
	}
	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func runParseDir(cmd *cobra.Command, dir string, cfg driver.Config, format string, dumpTree bool) error {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	// Кэш хранит только диагностику, при --ast он бесполезен.
	var cache *driver.DiskCache
	if withCache, _ := cmd.Flags().GetBool("cache"); withCache && !dumpTree {
		cache, err = driver.OpenDiskCache("volt")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var fs *source.FileSet
	var results []driver.ParseDirResult
	if shouldUseTUI(mode) && format == "pretty" && !dumpTree {
		fs, results, err = parseDirWithUI(cmd, dir, cfg, jobs, cache)
	} else {
		fs, results, err = parseDirPlain(cmd, dir, cfg, jobs, cache)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
		ShowHints: true,
	}

	failed := false
	for idx, r := range results {
		if r.Bag.HasErrors() {
			failed = true
		}
		switch format {
		case "json":
			if err := diagfmt.JSON(os.Stdout, r.Bag, fs, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		default:
			if r.Bag.HasErrors() || r.Bag.HasWarnings() {
				diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
			}
		}
		if dumpTree && r.AST != nil {
			if !quiet {
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			diagfmt.DumpAST(os.Stdout, r.AST, fs)
			if !quiet && idx < len(results)-1 {
				fmt.Fprintln(os.Stdout)
			}
		}
	}

	if !quiet && format == "pretty" {
		fmt.Fprintf(os.Stderr, "parsed %d files\n", len(results))
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func parseDirPlain(cmd *cobra.Command, dir string, cfg driver.Config, jobs int, cache *driver.DiskCache) (*source.FileSet, []driver.ParseDirResult, error) {
	fs, results, err := driver.ParseDir(cmd.Context(), dir, cfg, jobs, cache)
	if err != nil {
		return nil, nil, err
	}
	return fs, results, nil
}
