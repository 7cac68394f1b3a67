package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/config"

	// commands register themselves
	_ "github.com/keshon/svcs/internal/command/add"
	_ "github.com/keshon/svcs/internal/command/checkout"
	_ "github.com/keshon/svcs/internal/command/commit"
	_ "github.com/keshon/svcs/internal/command/config"
	"github.com/keshon/svcs/internal/command/help"
	_ "github.com/keshon/svcs/internal/command/log"
)

// Streams are the process's standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewRootCmd builds the svcs command line. Settings are loaded and the
// repository layout is created before any command runs; a failure there is
// the only way the process exits non-zero.
func NewRootCmd(s Streams) *cobra.Command {
	var env *command.Env
	getEnv := func() *command.Env { return env }

	var interactive bool

	root := &cobra.Command{
		Use:              "svcs",
		Short:            "A minimal single-user version control system.",
		Args:             cobra.ArbitraryArgs,
		TraverseChildren: true,
		SilenceUsage:     true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	config.InitFlags(root)
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read commands from stdin, one per line.")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		settings, err := config.LoadSettings(root)
		if err != nil {
			return err
		}
		env = command.NewEnv(settings, s.Out, s.Err)
		_, err = env.Repository()
		return err
	}

	root.RunE = func(_ *cobra.Command, args []string) error {
		if interactive {
			return RunInteractive(env, s.In)
		}
		command.Print(env, command.Dispatch(env, args))
		return nil
	}

	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if c != root {
			c.Println(c.Long)
			return
		}
		_, _ = io.WriteString(s.Out, help.Page()+"\n")
	})

	for _, cmd := range command.AllCommands() {
		sub := command.Cobra(cmd, getEnv)
		if cmd.Name() == command.HelpCommand {
			root.SetHelpCommand(sub)
			continue
		}
		root.AddCommand(sub)
	}

	return root
}
