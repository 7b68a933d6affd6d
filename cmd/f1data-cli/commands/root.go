package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"f1data-backend/lib/configutil"
	"f1data-backend/lib/ergast"
	"f1data-backend/lib/restyutil"
	"f1data-backend/lib/serviceutil"

	"github.com/spf13/cobra"
)

// Config holds the collection knobs checked into config.json5, local
// overrides go into config.local.json5.
type Config struct {
	BaseUrl   string  `json:"base_url"`
	RateLimit float64 `json:"rate_limit_seconds"`
}

var debugHttp *bool

var rootCmd = &cobra.Command{
	Use:   "f1data-cli",
	Short: "f1data-cli pulls historical motorsport data from the Ergast API.",
}

func init() {
	debugHttp = rootCmd.PersistentFlags().Bool(
		"debug-http", false,
		"Dump every raw HTTP exchange to .dev/resty.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCollector() *ergast.Client {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	opts := ergast.ClientOptions{
		BaseURL:   cfg.BaseUrl,
		RateLimit: time.Duration(cfg.RateLimit * float64(time.Second)),
	}
	if *debugHttp {
		opts.InstrumentOutput = restyutil.NewFilesystemOutput(".dev/resty")
	}
	return ergast.NewClient(opts)
}
