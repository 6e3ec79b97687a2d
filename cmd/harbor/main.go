package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SamWeichangyue/page-spy/internal/collector"
	cfgpkg "github.com/SamWeichangyue/page-spy/internal/config"
	logpkg "github.com/SamWeichangyue/page-spy/pkg/log"
)

var version = "dev"

func main() {
	// Respect HARBOR_LOG_LEVEL for CLI output before config is loaded.
	parsed, err := logpkg.ParseLevel(os.Getenv("HARBOR_LOG_LEVEL"))
	if err != nil {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormat(logpkg.FormatText),
		logpkg.WithOutput(os.Stderr),
	)

	rootCmd := &cobra.Command{
		Use:   "harbor",
		Short: "Harbor staging buffer CLI",
		Long:  "Harbor stages collector telemetry on disk. This CLI dumps staged data to files and uploads it to a remote collector.",
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (json or yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (if not specified, uses OS-specific application data directory)")
	rootCmd.PersistentFlags().String("project", "", "Project tag for snapshot names and uploads")
	rootCmd.PersistentFlags().String("title", "", "Title tag for snapshot names and uploads")

	// version
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("harbor", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	// dump
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the staged harbor snapshot to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			c, err := collector.Open(collector.Options{Config: cfg, Logger: logger})
			if err != nil {
				return err
			}
			defer c.Close()

			path, err := c.Dump(out)
			if err != nil {
				return fmt.Errorf("dump failed: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
	dumpCmd.Flags().String("out", ".", "Output directory")
	rootCmd.AddCommand(dumpCmd)

	// upload
	uploadCmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the staged harbor snapshot to a remote collector",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if api, _ := cmd.Flags().GetString("api"); api != "" {
				cfg.APIBase = api
			}
			if cfg.APIBase == "" {
				return fmt.Errorf("upload requires --api or HARBOR_API_BASE")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			c, err := collector.Open(collector.Options{Config: cfg, Logger: logger})
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Upload(ctx); err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}
			fmt.Println("uploaded")
			return nil
		},
	}
	uploadCmd.Flags().String("api", os.Getenv("HARBOR_API_BASE"), "Remote collector base URL")
	rootCmd.AddCommand(uploadCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, an optional config file, HARBOR_* env vars,
// and finally persistent flags.
func resolveConfig(cmd *cobra.Command) (cfgpkg.Config, error) {
	cfg := cfgpkg.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := cfgpkg.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfgpkg.FromEnv(&cfg)
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if cfg.DataDir == "" {
		cfg.DataDir = cfgpkg.DefaultDataDir()
	}
	if v, _ := cmd.Flags().GetString("project"); v != "" {
		cfg.Project = v
	}
	if v, _ := cmd.Flags().GetString("title"); v != "" {
		cfg.Title = v
	}
	return cfg, nil
}
