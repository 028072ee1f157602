package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/kvstore/cmd/util"
	"github.com/ValentinKolb/kvstore/lib/cli"
	"github.com/ValentinKolb/kvstore/lib/common"
	"github.com/ValentinKolb/kvstore/lib/env"
	"github.com/ValentinKolb/kvstore/lib/store"
	"github.com/ValentinKolb/kvstore/lib/store/fstore"
	"github.com/spf13/cobra"
)

const (
	// ErrorPrefix is printed in front of every error on stderr
	ErrorPrefix = "kv-error: "
)

var (
	// invocation is filled by parseArgs before the command runs
	invocation cli.Invocation

	// RootCmd represents the kv command
	RootCmd = &cobra.Command{
		Use:   "kv [key] [value]",
		Short: "command-line key-value store",
		Long: fmt.Sprintf("kv (v%s)\n\n%s", cli.Version, util.WrapString(
			"A command-line key-value store keeping its entries in a single tab separated file. "+
				"Entries can be read, written, listed and exported as shell variables.")),
		// the argument grammar is owned by cli.Parse
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args:               parseArgs,
		PersistentPreRunE:  setup,
		RunE:               run,
	}
)

func init() {
	cobra.OnInitialize(util.InitConfig)
}

// parseArgs runs before anything else touches the config or the database
func parseArgs(_ *cobra.Command, args []string) error {
	inv, err := cli.Parse(args)
	if err != nil {
		return err
	}
	invocation = inv
	return nil
}

// setup initializes the loggers from the configuration
func setup(_ *cobra.Command, _ []string) error {
	return common.InitLoggers(util.GetConfig().LogLevel)
}

func run(cmd *cobra.Command, _ []string) error {
	config := util.GetConfig()
	cli.Logger.Debugf("\n%s", config)

	var s store.IStore
	if invocation.NeedsStore() {
		fs, err := fstore.Open(config.DBPath(), &fstore.Options{AtomicSave: config.AtomicSave})
		if err != nil {
			return err
		}
		s = fs
	}

	out, err := invocation.Run(s, env.NewBuilder(nil))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s%s\n", ErrorPrefix, err)
		os.Exit(1)
	}
}
