package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var authState string

var authorizeURLCmd = &cobra.Command{
	Use:   "authorize-url",
	Short: "Print the Weibo authorization URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		s, err := cfg.strategy(cfg.logger())
		if err != nil {
			return err
		}

		state := authState
		if state == "" {
			state = uuid.NewString()
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s.AuthCodeURL(state))
		return err
	},
}

func init() {
	authorizeURLCmd.Flags().StringVar(&authState, "state", "", "OAuth state value (random when empty)")
	rootCmd.AddCommand(authorizeURLCmd)
}
