package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nace/gavel/internal/ui"
)

// ConfigCommand shows the effective configuration after merging
// defaults, file, environment and flags
type ConfigCommand struct {
	ctx  *GlobalContext
	json bool
}

// NewConfigCommand creates the config command
func NewConfigCommand(ctx *GlobalContext) *cobra.Command {
	cmd := &ConfigCommand{ctx: ctx}

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the merged configuration as the tool sees it, along with
the flag values and any GAVEL_* environment variables that fed into
it. Useful for working out where a setting came from.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVarP(&cmd.json, "json", "j", false, "JSON output")

	return cobraCmd
}

// Run executes the config command
func (c *ConfigCommand) Run(cmd *cobra.Command, args []string) error {
	settings := c.ctx.Opts.Settings
	if c.json {
		return ui.PrintJSON(settings)
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := ui.NewTable("KEY", "VALUE")
	for _, k := range keys {
		value := fmt.Sprint(settings[k])
		if k == "password" && value != "" {
			value = c.ctx.Secrets.String()
		}
		table.AddRow(k, value)
	}
	table.Print()

	fmt.Println("-- flags --")
	cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
		fmt.Printf("%s = %s\n", f.Name, f.Value.String())
	})

	fmt.Println("-- environment (GAVEL_*) --")
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "GAVEL_") {
			fmt.Println(e)
		}
	}

	return nil
}
