// Command bower opens the built-in demo views and inspects their registries.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/phanxgames/bower"
	"github.com/phanxgames/bower/internal/demo"
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
		Use:          "bower",
		Short:        "bower runs and inspects retained-mode scene views",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				bower.SetDebugMode(true)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newViewCmd(&verbose))
	root.AddCommand(newDumpCmd())
	root.AddCommand(newConfigCmd())
	return root
}

func lookupView(name string) (func() *bower.Node, error) {
	v, ok := demo.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown view %q (available: %s)", name, strings.Join(demo.Names(), ", "))
	}
	return v, nil
}

func newViewCmd(verbose *bool) *cobra.Command {
	var (
		configPath string
		scriptPath string
		showFPS    bool
	)
	cmd := &cobra.Command{
		Use:   "view [name]",
		Short: "Open a demo view in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "nested"
			if len(args) == 1 {
				name = args[0]
			}
			view, err := lookupView(name)
			if err != nil {
				return err
			}

			cfg := bower.DefaultRunConfig()
			if configPath != "" {
				if cfg, err = bower.LoadRunConfig(configPath); err != nil {
					return err
				}
			}
			cfg.Title = "bower: " + name
			cfg.ShowFPS = cfg.ShowFPS || showFPS
			cfg.Debug = cfg.Debug || *verbose

			app := bower.ViewFunc(view)
			if scriptPath == "" {
				return bower.Run(app, cfg)
			}
			data, err := os.ReadFile(scriptPath)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := bower.LoadTestScript(data)
			if err != nil {
				return err
			}
			return bower.RunWithScript(app, cfg, runner)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML run configuration")
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON test script to replay")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")
	return cmd
}

func newDumpCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "dump [name]",
		Short: "Print a demo view's registry in paint order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "nested"
			if len(args) == 1 {
				name = args[0]
			}
			view, err := lookupView(name)
			if err != nil {
				return err
			}
			r := bower.NewRegistry(view(), bower.Surface{Width: width, Height: height})
			st := r.Stats()
			fmt.Fprintln(cmd.OutOrStdout(), r.Dump())
			bower.Logger().Info("registry", "view", name, "nodes", st.Total, "clickable", st.Clickable)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "surface width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "surface height in pixels")
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default run configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(bower.DefaultRunConfig())
		},
	}
}
