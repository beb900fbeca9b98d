package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/solquant/vajra/data"
	"github.com/solquant/vajra/settings"
)

var (
	debugLogging bool
	secretName   string
	cloudSecret  bool
)

var rootCmd = &cobra.Command{
	Use:   "vajra",
	Short: "Technical-analysis strategy backtester",
	Long: `Vajra evaluates RSI, Bollinger Band and combined trading strategies
against historical daily price series and reports trade-level performance
metrics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if debugLogging {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&secretName, "secret", "", "Path to a json secret file, or a secret name with --cloud-secret")
	rootCmd.PersistentFlags().BoolVar(&cloudSecret, "cloud-secret", false, "Load --secret from AWS Secrets Manager instead of a file")
}

// loadRunSecret resolves the --secret flag. With no flag set every
// credential falls back to its environment variable.
func loadRunSecret() (settings.Secret, error) {
	if secretName == "" {
		return settings.Secret{}, nil
	}
	return settings.LoadSecret(secretName, cloudSecret)
}

func newAlphaClient(secret settings.Secret) (*data.Client, error) {
	if secret.AlphaVantageKey != "" {
		return data.NewClient(secret.AlphaVantageKey), nil
	}
	return data.NewClientFromEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
