package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for parsing resumes, ranking experiences, and managing saved jobs.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveDBPath     string
	serveUploadDir  string
)

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Path to SQLite database (overrides config and DATABASE_PATH)")
	serveCmd.Flags().StringVar(&serveUploadDir, "upload-dir", "", "Directory for uploaded resumes (overrides config and UPLOAD_DIR)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabasePath: cfg.DatabasePath,
		UploadDir:    cfg.UploadDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveServeConfig layers configuration sources: flags beat environment
// variables, which beat the config file, which beats hard defaults.
func resolveServeConfig() (config.Config, error) {
	var fileCfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	cfg := config.FromEnv()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDBPath != "" {
		cfg.DatabasePath = serveDBPath
	}
	if serveUploadDir != "" {
		cfg.UploadDir = serveUploadDir
	}

	merged := cfg.MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
