package cmd

import (
	"context"
	"net/http"
	"os"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/oklog/run"
	"github.com/spf13/cobra"

	cmdcommon "github.com/tequdev/xahau-governance-hook-test/cmd/govern/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/api"
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/metrics"
)

var (
	flagBindAddress    string = common.GetENVValue("GOVERN_BIND", "localhost:2024")
	flagHTTPLog        string = common.GetENVValue("GOVERN_HTTP_LOG", "")
	flagCloseInterval  time.Duration
	flagPrintStack     bool = common.GetENVValue("GOVERN_PRINT_STACK", "0") == "1"
	flagDisableMetrics bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ledger over http",
	Run: func(c *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			cmdcommon.PrintError(c, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagBindAddress, "bind", flagBindAddress, "address to listen on")
	serveCmd.Flags().StringVar(&flagHTTPLog, "http-log", flagHTTPLog, "write the http access log to this file")
	serveCmd.Flags().DurationVar(&flagCloseInterval, "close-interval", flagCloseInterval, "close a ledger every interval; 0 closes only by 'POST /v1/ledger/close'")
	serveCmd.Flags().BoolVar(&flagPrintStack, "print-stack", flagPrintStack, "print the stack of the recovered panics")
	serveCmd.Flags().BoolVar(&flagDisableMetrics, "disable-metrics", flagDisableMetrics, "do not collect prometheus metrics")
}

func runServe() error {
	config, err := parseConfig()
	if err != nil {
		return err
	}

	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	if !flagDisableMetrics {
		metrics.InitPrometheusMetrics()
	}
	metrics.SetVersion()

	handler := api.NewRouter(api.NewNetworkHandlerAPI(l, config, ""), flagPrintStack)

	httpLog := os.Stdout
	if len(flagHTTPLog) > 0 {
		if httpLog, err = os.OpenFile(flagHTTPLog, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644); err != nil {
			return err
		}
		defer httpLog.Close()
	}

	server := &http.Server{
		Addr:              flagBindAddress,
		Handler:           ghandlers.CombinedLoggingHandler(httpLog, handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var g run.Group
	{
		g.Add(func() error {
			log.Info("starting http server", "bind", flagBindAddress, "genesis", config.Genesis)
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				log.Crit("failed to start http server", "error", err)
				return err
			}
			return nil
		}, func(error) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(ctx)
		})
	}
	if flagCloseInterval > 0 {
		ticker := time.NewTicker(flagCloseInterval)
		done := make(chan struct{})
		g.Add(func() error {
			for {
				select {
				case <-ticker.C:
					result, err := l.Close()
					if err != nil {
						log.Error("failed to close ledger", "error", err)
						return err
					}
					log.Debug("ledger closed", "sequence", result.Sequence, "applied", len(result.Applied))
				case <-done:
					return nil
				}
			}
		}, func(error) {
			ticker.Stop()
			close(done)
		})
	}
	{
		cancel := make(chan struct{})
		g.Add(func() error {
			return cmdcommon.Interrupt(cancel)
		}, func(error) {
			close(cancel)
		})
	}

	return g.Run()
}
