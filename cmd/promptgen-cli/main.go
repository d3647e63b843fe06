// Command promptgen-cli lints and renders component manifests from the
// terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	promptgen "github.com/goliatone/go-promptgen"
	"github.com/goliatone/go-promptgen/pkg/component"
	"github.com/goliatone/go-promptgen/pkg/render/template/pongo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "promptgen-cli",
		Short:         "Lint and render prompt component manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newLintCmd(&verbose))
	root.AddCommand(newRenderCmd(&verbose))
	return root
}

func newLintCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <manifest>",
		Short: "Validate a component manifest without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := buildOrchestrator(args[0], *verbose)
			if err != nil {
				return err
			}
			if err := orch.LoadManifest(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "manifest %s is valid\n", args[0])
			return nil
		},
	}
}

func newRenderCmd(verbose *bool) *cobra.Command {
	var valuesPath string

	cmd := &cobra.Command{
		Use:   "render <manifest> <component>",
		Short: "Render a component declared in a manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, name := args[0], args[1]

			orch, err := buildOrchestrator(manifestPath, *verbose)
			if err != nil {
				return err
			}
			if err := orch.LoadManifest(manifestPath); err != nil {
				return err
			}

			vals, err := loadValues(valuesPath)
			if err != nil {
				return err
			}

			out, err := orch.Render(cmd.Context(), name, vals)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML file with field values")
	return cmd
}

func buildOrchestrator(manifestPath string, verbose bool) (*promptgen.Orchestrator, error) {
	logger := log.New(os.Stderr)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	engine, err := pongo.New(pongo.WithBaseDir(filepath.Dir(manifestPath)))
	if err != nil {
		return nil, fmt.Errorf("create template engine: %w", err)
	}

	return promptgen.New(
		promptgen.WithLogger(logger),
		promptgen.WithEngine(engine),
	), nil
}

func loadValues(path string) (component.Values, error) {
	if path == "" {
		return component.Values{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values file %q: %w", path, err)
	}
	vals := component.Values{}
	if err := yaml.Unmarshal(data, &vals); err != nil {
		return nil, fmt.Errorf("parse values file %q: %w", path, err)
	}
	return vals, nil
}
