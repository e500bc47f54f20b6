package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/dealer-catalog/api/openapi"
	"github.com/donaldgifford/dealer-catalog/internal/config"
	"github.com/donaldgifford/dealer-catalog/pkg/logger"
)

var openapiFormat string

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI document of the HTTP API",
	Example: `  dealer-catalog openapi > api/openapi/openapi.json
  dealer-catalog openapi --format yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Default()
		a, err := newApp(cmd.Context(), cfg, logger.New("error", "text"))
		if err != nil {
			return err
		}
		a.documentOnly = true

		_, api := a.newRouter()
		return openapi.Write(cmd.OutOrStdout(), api, openapiFormat)
	},
}

func init() {
	openapiCmd.Flags().StringVar(&openapiFormat, "format", "json", "output format (json, yaml)")
	rootCmd.AddCommand(openapiCmd)
}
