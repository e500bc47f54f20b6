package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "settings",
		Short: "Read and write back-office settings (admin)",
		Long: "Settings are opaque JSON values keyed by name. Well-known keys are\n" +
			"featured_vehicles (array of vehicle ids) and banner (landing page banner).",
	}

	root.AddCommand(settingGetCmd(), settingSetCmd())
	return root
}

func settingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print a setting value",
		Example: `  dcat settings get featured_vehicles`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := newClient().GetSetting(context.Background(), args[0])
			if err != nil {
				return err
			}
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			return outputJSON(v)
		},
	}
}

func settingSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <json>",
		Short: "Replace a setting value",
		Example: `  dcat settings set featured_vehicles '["gen-3","gen-7"]'
  dcat settings set banner '{"enabled":true,"text":{"de":"Sommeraktion","fr":"Action d'\''été","en":"Summer sale"}}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			value := json.RawMessage(args[1])
			if !json.Valid(value) {
				return fmt.Errorf("value for %s is not valid JSON", args[0])
			}
			if err := newClient().PutSetting(context.Background(), args[0], value); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Setting %s stored.\n", args[0])
			return nil
		},
	}
}
