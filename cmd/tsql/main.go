// Package main contains the cli implementation of the tsql-go tool. It
// uses cobra for cli tool implementation, following the structure of
// cmd/smf/main.go (flag wiring style, RunE closures, os.WriteFile-or-stdout
// output).
package main

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/letsmelon/tsql-go/internal/config"
	"github.com/letsmelon/tsql-go/internal/emit"
	"github.com/letsmelon/tsql-go/internal/generate"
	"github.com/letsmelon/tsql-go/internal/grammar"
	"github.com/letsmelon/tsql-go/internal/schema"
)

const configFileName = ".tsqlrc.toml"

type compileFlags struct {
	outFile string
	format  string
	verify  bool
	debug   bool
}

type generateFlags struct {
	seed           int
	fieldsPerTable int
	outFile        string
	format         string
}

type tsqlFlags struct {
	outFile string
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tsql",
		Short: "Compile TSQL schema descriptions into SQL",
	}

	rootCmd.AddCommand(compileCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(tsqlCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	return config.LoadFileOrDefault(configFileName)
}

func compileCmd() *cobra.Command {
	flags := &compileFlags{}
	cmd := &cobra.Command{
		Use:   "compile <schema.tsql>",
		Short: "Parse, resolve and emit SQL for a TSQL schema file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCompile(args[0], flags)
		},
	}

	cfg, _ := loadConfig()
	cmd.Flags().StringVarP(&flags.outFile, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", cfg.Output.Format, "Output format: sql, tsql or json")
	cmd.Flags().BoolVar(&flags.verify, "verify", cfg.Output.Verify, "Validate emitted SQL with a real SQL parser")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Pretty-print the resolved table collection to stderr")

	return cmd
}

func runCompile(path string, flags *compileFlags) error {
	rawTables, err := grammar.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	resolved, err := schema.Resolve(rawTables)
	if err != nil {
		return fmt.Errorf("resolve error: %w", err)
	}

	if flags.debug {
		pp.Fprintln(os.Stderr, resolved)
	}

	output, err := formatResolved(resolved, flags.format)
	if err != nil {
		return err
	}

	if flags.verify && flags.format == "sql" {
		if err := emit.ValidateSQL(output, resolved.Names()); err != nil {
			return fmt.Errorf("emitted SQL failed validation: %w", err)
		}
	}

	return writeOutput(output, flags.outFile)
}

func formatResolved(resolved *schema.TableCollection, format string) (string, error) {
	switch format {
	case "", "sql":
		return emit.SQL(resolved), nil
	case "tsql":
		return emit.TSQL(resolved), nil
	case "json":
		return emit.JSONDump(resolved)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func generateCmd() *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Produce a deterministic dummy table fixture",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(flags)
		},
	}

	cfg, _ := loadConfig()
	cmd.Flags().IntVar(&flags.seed, "seed", cfg.Generate.Seed, "Integer seed for the dummy table")
	cmd.Flags().IntVar(&flags.fieldsPerTable, "fields", cfg.Generate.FieldsPerTable, "Number of fields in the generated table")
	cmd.Flags().StringVarP(&flags.outFile, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "sql", "Output format: sql, tsql or json")

	return cmd
}

func runGenerate(flags *generateFlags) error {
	table := generate.GenerateTable(flags.seed, flags.fieldsPerTable)

	tables := schema.NewTableCollectionForGenerated(table)

	output, err := formatResolved(tables, flags.format)
	if err != nil {
		return err
	}

	return writeOutput(output, flags.outFile)
}

func tsqlCmd() *cobra.Command {
	flags := &tsqlFlags{}
	cmd := &cobra.Command{
		Use:   "tsql <schema.tsql>",
		Short: "Parse, resolve and re-emit a TSQL schema file as canonical TSQL",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTSQL(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outFile, "output", "o", "", "Output file (defaults to stdout)")

	return cmd
}

func runTSQL(path string, flags *tsqlFlags) error {
	rawTables, err := grammar.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	resolved, err := schema.Resolve(rawTables)
	if err != nil {
		return fmt.Errorf("resolve error: %w", err)
	}

	return writeOutput(emit.TSQL(resolved), flags.outFile)
}

func writeOutput(content, outFile string) error {
	if outFile == "" {
		fmt.Print(content)
		return nil
	}

	if err := os.WriteFile(outFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Output saved to %s\n", outFile)
	return nil
}
