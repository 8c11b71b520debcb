package terminal

import (
	"io"
	"os"

	"github.com/de-tools/fabric-migration-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/fabric-migration-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	factory  commands.ExplorerFactory
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory commands.ExplorerFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Factory == nil {
		opts.Factory = commands.DefaultExplorerFactory
	}

	cli := &CLI{
		factory:  opts.Factory,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fabric-atlas",
		Short: "Tenant migration-readiness discovery tool",
	}

	cmd.AddCommand(commands.NewDiscoverCmd(cli.factory, cli.reporter))
	cmd.AddCommand(commands.NewCapacitiesCmd(cli.factory))
	cmd.AddCommand(commands.NewWorkspacesCmd(cli.factory))

	return cmd
}
