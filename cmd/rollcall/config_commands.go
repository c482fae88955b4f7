package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rollcall/internal/config"
	"rollcall/internal/questions"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create sample configuration files",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			mappingPath := filepath.Join(filepath.Dir(target), "questions.yaml")
			mappingWritten := false
			if _, err := os.Stat(mappingPath); os.IsNotExist(err) || (err == nil && overwrite) {
				if err := questions.CreateSample(mappingPath); err != nil {
					return fmt.Errorf("create sample mapping: %w", err)
				}
				mappingWritten = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			if mappingWritten {
				fmt.Fprintf(out, "Wrote sample question mapping to %s\n", mappingPath)
			}
			fmt.Fprintln(out, "Edit the paths and the event definitions before running a batch.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration and question mapping",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configFlag := ""
			if ctx.configFlag != nil {
				configFlag = *ctx.configFlag
			}
			cfg, path, exists, err := config.Load(configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}

			_, mappingExists, err := questions.Load(cfg.Paths.MappingFile)
			if err != nil {
				return fmt.Errorf("load mapping: %w", err)
			}
			fmt.Fprintf(out, "Mapping path: %s\n", cfg.Paths.MappingFile)
			if !mappingExists {
				fmt.Fprintln(out, "Mapping file did not exist; built-in defaults were used")
			}

			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
