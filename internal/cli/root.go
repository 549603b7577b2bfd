// Package cli implements the marscard command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/config"
	"github.com/rackaracka123/terraforming-mars-sub000/internal/output"
)

var (
	cfgFile string
	cfg     *config.Config

	// Global JSON output flag - inherited by all subcommands
	jsonOutput bool

	// Build information - set by goreleaser via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "marscard",
	Short: "Render Terraforming Mars project cards in the terminal",
	Long: `marscard reads card behavior files (JSON or YAML) and renders them
as terminal cards: behaviors are classified, consolidated, and laid out
row by row inside the card's icon budget.

Quick Start:
  marscard render card.json             # Draw a card
  marscard inspect card.json            # Show the layout pipeline stages
  marscard list ./cards                 # One-line summary per card
  marscard browse ./cards               # Interactive card browser
  marscard diff a.json b.json           # Compare two rendered cards`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput = output.JSONMode(jsonOutput)
		var err error
		cfg, err = config.LoadOrDefault(cfgFile)
		if err != nil {
			return output.ConfigError(err)
		}
		return nil
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set so JSON mode can shape its own output
		if !jsonOutput {
			if cliErr, ok := err.(*output.CLIError); ok {
				output.PrintCLIError(cliErr)
			} else {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		} else {
			output.PrintCLIErrorOrJSON(asCLIError(err), true)
		}
		return err
	}
	return nil
}

func asCLIError(err error) *output.CLIError {
	if cliErr, ok := err.(*output.CLIError); ok {
		return cliErr
	}
	return output.NewCLIError(err.Error())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path (default ~/.config/marscard/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")

	rootCmd.AddCommand(
		newRenderCmd(),
		newInspectCmd(),
		newListCmd(),
		newBrowseCmd(),
		newDiffCmd(),
		newGuideCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Println(Version)
				return nil
			}

			f := output.Stdout(jsonOutput)
			resp := output.VersionResponse{
				TimestampedResponse: output.NewTimestamped(),
				Version:             Version,
				Commit:              Commit,
				BuiltAt:             Date,
				GoVersion:           runtime.Version(),
				Platform:            fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
			}
			return f.OutputData(resp, func(w io.Writer) error {
				fmt.Fprintf(w, "marscard %s (%s, built %s)\n", Version, Commit, Date)
				fmt.Fprintf(w, "  go:       %s\n", runtime.Version())
				fmt.Fprintf(w, "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return output.PrintJSON(cfg)
			}
			return config.Print(cfg, cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefault()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.DefaultPath())
		},
	})

	return cmd
}
