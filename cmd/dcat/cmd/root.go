// Package cmd implements the dcat CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/dealer-catalog/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "dcat",
		Short: "CLI client for the Dealer Catalog API",
		Long: "dcat is a command-line client for the Dealer Catalog API.\n" +
			"It lets you browse the vehicle catalog and rental fleet, compute\n" +
			"financing plans, and manage settings and catalog refreshes.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.dcat.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("locale", "", "display language (de, fr, en)")
	rootCmd.PersistentFlags().
		String("token", "", "admin token for back-office commands")

	for _, name := range []string{"server", "output", "locale", "token"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	rootCmd.AddCommand(vehiclesCmd())
	rootCmd.AddCommand(rentalsCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(financeCmd())
	rootCmd.AddCommand(catalogCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dcat")
	}

	viper.SetEnvPrefix("DCAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"),
		apiclient.WithLocale(viper.GetString("locale")),
		apiclient.WithToken(viper.GetString("token")),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
