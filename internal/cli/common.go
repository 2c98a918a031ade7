package cli

import (
	"fmt"
	"os"

	"github.com/nace/gavel/internal/config"
	"github.com/nace/gavel/internal/logfile"
	"github.com/nace/gavel/internal/secret"
	"github.com/nace/gavel/internal/ui"
)

// GlobalContext holds shared resources for all commands
type GlobalContext struct {
	Logger  *ui.Logger
	Log     *logfile.Log
	Opts    *config.Options
	Secrets *secret.Keeper
}

// NewGlobalContext creates a context with defaults; Configure applies
// the loaded options once flags have been parsed.
func NewGlobalContext() *GlobalContext {
	return &GlobalContext{
		Logger:  ui.NewLogger(false, false, false),
		Log:     logfile.New(),
		Opts:    &config.Options{},
		Secrets: secret.NewKeeper(),
	}
}

// Configure applies loaded options to the context. A password found
// in the configuration moves into the Keeper and is obfuscated right
// away so only one in-memory copy exists, and not in plaintext.
func (ctx *GlobalContext) Configure(opts *config.Options, verbose, noColor bool) {
	ctx.Opts = opts
	ctx.Logger = ui.NewLogger(verbose, opts.Quiet, noColor)
	ctx.Log.Debug = opts.Debug
	if opts.Password != "" {
		ctx.Secrets.Set([]byte(opts.Password))
		ctx.Secrets.Obfuscate()
		opts.Password = ""
	}
}

// EnsureCredentials fills in the username and password, prompting on
// the terminal for whichever is missing. The password prompt does not
// echo, and the secret goes straight into the Keeper obfuscated.
// A non-terminal stdin is reported, not fatal: the caller decides.
func (ctx *GlobalContext) EnsureCredentials() error {
	if ctx.Opts.Username == "" {
		name, err := ui.Prompt(os.Stdin, "Enter auction server username: ", false)
		if err != nil {
			ctx.Log.Mirror(os.Stderr, "Cannot prompt, stdin is not a terminal\n")
			return fmt.Errorf("failed to read username: %w", err)
		}
		ctx.Opts.Username = name
	}
	if !ctx.Secrets.IsSet() {
		pw, err := ui.Prompt(os.Stdin, "Enter auction server password: ", true)
		if err != nil {
			ctx.Log.Mirror(os.Stderr, "Cannot prompt, stdin is not a terminal\n")
			return fmt.Errorf("failed to read password: %w", err)
		}
		ctx.Secrets.Set([]byte(pw))
		ctx.Secrets.Obfuscate()
	}
	return nil
}
