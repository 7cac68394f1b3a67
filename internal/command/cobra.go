package command

import (
	"github.com/spf13/cobra"
)

// Cobra adapts cmd into a cobra subcommand. Arguments reach cmd untouched,
// so a commit message may start with a dash; only a lone --help or -h is
// taken as a request for the command's help.
func Cobra(cmd Command, env func() *Env) *cobra.Command {
	return &cobra.Command{
		Use:                cmd.Usage(),
		Aliases:            cmd.Aliases(),
		Short:              cmd.Brief(),
		Long:               cmd.Help(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(_ *cobra.Command, args []string) error {
			e := env()
			if cmd.Name() != HelpCommand && HelpRequested(args) {
				Print(e, Dispatch(e, []string{HelpCommand, cmd.Name()}))
				return nil
			}
			Print(e, Execute(e, cmd, args))
			return nil
		},
	}
}
