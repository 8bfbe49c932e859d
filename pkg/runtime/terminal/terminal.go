package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/soonlabs/binance-api-key-audit/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binance-audit",
		Short: "Binance API key security audit tool",
	}

	cmd.AddCommand(commands.NewAuditCmd(opts.Output, opts.ErrOutput))
	cmd.AddCommand(commands.NewProfilesCmd(opts.Output))

	return cmd
}
