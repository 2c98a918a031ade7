package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nace/gavel/internal/cli"
	"github.com/nace/gavel/internal/config"
)

const progname = "gavel"

var (
	cfgFile string
	verbose bool
	noColor bool

	ctx = cli.NewGlobalContext()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

// fail implements the fatal error path: report on stderr and in the
// diagnostic log, release the secret, exit nonzero. Recoverable
// conditions (bad config values, non-terminal stdin, unopenable log
// file) are handled where they occur and never reach here.
func fail(err error) {
	ctx.Log.Printf("fatal: %v\n", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", progname, err)
	ctx.Log.Close()
	ctx.Secrets.Wipe()
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   progname,
	Short: "Gavel - auction sniping automation tool",
	Long: `Gavel is a command-line utility that automates last-moment bidding
on auction sites. This is its runtime layer: configuration handling,
credential entry with in-memory password obfuscation, and the
timestamped diagnostic log used to reconstruct a bidding session.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Load(cmd, cfgFile)
		if err != nil {
			return err
		}
		ctx.Configure(opts, verbose, noColor)
		ctx.Log.Open(progname, "", opts.LogDir)
		ctx.Log.Printf("%s startup\n", progname)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx.Log.Printf("%s shutdown\n", progname)
		ctx.Log.Close()
		ctx.Secrets.Wipe()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to an explicit configuration file")
	rootCmd.PersistentFlags().String("username", "", "Auction server username")
	rootCmd.PersistentFlags().String("proxy", "", "HTTP proxy endpoint (host[:port])")
	rootCmd.PersistentFlags().String("log-dir", "", "Directory for diagnostic log files")
	rootCmd.PersistentFlags().Bool("debug", false, "Copy user-facing messages into the diagnostic log")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")

	rootCmd.AddCommand(cli.NewCheckCommand(ctx))
	rootCmd.AddCommand(cli.NewConfigCommand(ctx))

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
