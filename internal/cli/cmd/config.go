package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subjectbrowser/subject/internal/cli"
	"github.com/subjectbrowser/subject/internal/infrastructure/config"
)

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where config.toml lives and print its JSON schema for editor completion.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml.

With --write the schema is saved as config.schema.json next to config.toml
and the path is printed instead.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write config.schema.json next to config.toml")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	app.Println(app.Runtime.ConfigManager.ConfigFile())
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return printSchema(app, schemaWrite)
}

func printSchema(app *cli.App, write bool) error {
	if write {
		path, err := app.Runtime.ConfigManager.WriteSchemaFile()
		if err != nil {
			return err
		}
		app.Println(app.Theme.Success("Schema written to " + path))
		return nil
	}
	data, err := config.Schema()
	if err != nil {
		return err
	}
	app.Println(string(data))
	return nil
}
