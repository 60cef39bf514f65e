package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var accessToken string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Fetch the normalized profile for an access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := accessToken
		if token == "" {
			token = os.Getenv("WEIBO_ACCESS_TOKEN")
		}
		if token == "" {
			return errors.New("access token is required (--token or WEIBO_ACCESS_TOKEN)")
		}

		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		s, err := cfg.strategy(cfg.logger())
		if err != nil {
			return err
		}

		profile, err := s.UserProfile(cmd.Context(), token)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	},
}

func init() {
	profileCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Weibo access token")
	rootCmd.AddCommand(profileCmd)
}
