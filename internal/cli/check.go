package cli

import (
	"github.com/spf13/cobra"
)

// CheckCommand validates the effective configuration and credentials
type CheckCommand struct {
	ctx           *GlobalContext
	noCredentials bool
}

// NewCheckCommand creates the check command
func NewCheckCommand(ctx *GlobalContext) *cobra.Command {
	cmd := &CheckCommand{ctx: ctx}

	cobraCmd := &cobra.Command{
		Use:   "check [auction-id]",
		Short: "Validate configuration and credentials",
		Long: `Validate the effective configuration: proxy endpoint syntax,
boolean-valued options and credentials.

When an auction id is given, the diagnostic log is reopened with the
id embedded in its filename, the same naming a bidding run uses.
Missing credentials are prompted for on the terminal; the password
prompt does not echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.noCredentials, "no-credentials", false,
		"Skip the interactive credential check")

	return cobraCmd
}

// Run executes the check command
func (c *CheckCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		// Per-auction log file; Open closes the startup log first.
		c.ctx.Log.Open(cmd.Root().Name(), args[0], c.ctx.Opts.LogDir)
	}
	c.ctx.Log.Printf("configuration check started\n")

	if c.ctx.Opts.Proxy.Enabled() {
		c.ctx.Logger.Info("Proxy: %s", c.ctx.Opts.Proxy.String())
		c.ctx.Log.Printf("proxy endpoint %s\n", c.ctx.Opts.Proxy.String())
	} else {
		c.ctx.Logger.Info("Proxy: disabled")
	}

	if !c.noCredentials {
		if err := c.ctx.EnsureCredentials(); err != nil {
			return err
		}
		c.ctx.Logger.Success("Credentials present for user %s", c.ctx.Opts.Username)
		c.ctx.Log.Printf("credentials verified for user %s\n", c.ctx.Opts.Username)
	}

	c.ctx.Logger.Success("Configuration OK")
	c.ctx.Log.Printf("configuration check passed\n")
	return nil
}
