package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/halouxiaoyu/survey_backend/cmd/http"
	systemcmd "github.com/halouxiaoyu/survey_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "survey",
	Short: "Questionnaire scoring and assessment backend.",
	Long: `Survey is a questionnaire backend: admins author questionnaires with
weighted dimensions and assessment bands, respondents fill them in by
access code, and every submission is scored and classified on the spot.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
