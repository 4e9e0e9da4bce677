package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	logging "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cmdcommon "github.com/tequdev/xahau-governance-hook-test/cmd/govern/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/api"
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/ledger"
	"github.com/tequdev/xahau-governance-hook-test/lib/storage"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	flagLogLevel      string = common.GetENVValue("GOVERN_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput     string = common.GetENVValue("GOVERN_LOG_OUTPUT", "")
	flagStorageConfig string
	flagGenesis       string = common.GetENVValue("GOVERN_GENESIS", governance.DefaultGenesis.Address())
	flagEnvelopeTypes cmdcommon.ListFlags
	flagBaseFee       uint64 = ledger.DefaultBaseFee
	flagFormat        string = common.GetENVValue("GOVERN_FORMAT", "prettyjson")

	logLevel logging.Lvl
	log      logging.Logger = logging.New("module", "main")
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: "governance hook runner",
	PersistentPreRun: func(c *cobra.Command, args []string) {
		if err := setLogging(); err != nil {
			cmdcommon.PrintFlagsError(c, "--log-level", err)
		}
	},
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

func init() {
	currentDirectory, err := os.Getwd()
	if err != nil {
		currentDirectory = "."
	}
	flagStorageConfig = common.GetENVValue("GOVERN_STORAGE", fmt.Sprintf("file://%s/db", currentDirectory))

	if s := common.GetENVValue("GOVERN_ENVELOPE_TYPES", ""); len(s) > 0 {
		flagEnvelopeTypes.Set(s)
	}

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	rootCmd.PersistentFlags().StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	rootCmd.PersistentFlags().StringVar(&flagStorageConfig, "storage", flagStorageConfig, "storage uri, 'memory://' or 'file:///<path>'")
	rootCmd.PersistentFlags().StringVar(&flagGenesis, "genesis", flagGenesis, "address of the genesis account, which hosts the L1 table")
	rootCmd.PersistentFlags().Var(&flagEnvelopeTypes, "envelope-type", "transaction types which carry votes; default 'Payment'")
	rootCmd.PersistentFlags().Uint64Var(&flagBaseFee, "base-fee", flagBaseFee, "fee of the emitted transactions")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", flagFormat, "output format, {json, prettyjson, yaml}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cmdcommon.PrintFlagsError(rootCmd, "", err)
	}
}

func SetArgs(s []string) {
	rootCmd.SetArgs(s)
}

func setLogging() (err error) {
	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		return
	}

	var logHandler logging.Handler
	if logHandler, err = common.NewLogHandler(flagLogOutput); err != nil {
		return
	}
	if logLevel == logging.LvlDebug {
		logHandler = logging.CallerFileHandler(logHandler)
	}

	log.SetHandler(logging.LvlFilterHandler(logLevel, logHandler))
	common.SetLogging(logLevel, logHandler)
	hook.SetLogging(logLevel, logHandler)
	governance.SetLogging(logLevel, logHandler)
	ledger.SetLogging(logLevel, logHandler)
	api.SetLogging(logLevel, logHandler)

	return
}

// parseConfig builds the governance config from the flags and registers the
// governance program with it.
func parseConfig() (governance.Config, error) {
	genesis, err := account.Parse(flagGenesis)
	if err != nil {
		return governance.Config{}, errors.Wrap(err, "--genesis")
	}

	var types []transaction.TxType
	for _, s := range flagEnvelopeTypes {
		t, err := transaction.ParseTxType(s)
		if err != nil {
			return governance.Config{}, errors.Wrap(err, "--envelope-type")
		}
		types = append(types, t)
	}

	config, err := governance.NewConfig(genesis, types...)
	if err != nil {
		return governance.Config{}, err
	}
	governance.Register(config)

	return config, nil
}

func openLedger() (*ledger.Ledger, *storage.LevelDBBackend, error) {
	storageConfig, err := storage.NewConfigFromString(flagStorageConfig)
	if err != nil {
		return nil, nil, errors.Wrap(err, "--storage")
	}

	st, err := storage.NewStorage(storageConfig)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open storage")
	}

	l, err := ledger.New(st, flagBaseFee)
	if err != nil {
		st.Close()
		return nil, nil, errors.Wrap(err, "failed to open ledger")
	}

	log.Debug("ledger opened", "storage", storageConfig)

	return l, st, nil
}

func printResult(v interface{}) error {
	encode, err := cmdcommon.GetEncode(flagFormat)
	if err != nil {
		return errors.Wrap(err, "--format")
	}

	return encode(v, os.Stdout)
}
