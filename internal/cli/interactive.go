package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/keshon/svcs/internal/command"
)

const prompt = "svcs> "

// RunInteractive dispatches one command per input line until EOF or
// "exit". The prompt goes to stderr so stdout carries only results.
func RunInteractive(env *command.Env, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(env.Err, prompt)
		if !sc.Scan() {
			break
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			break
		}
		command.Print(env, command.Dispatch(env, args))
	}
	fmt.Fprintln(env.Err)
	return sc.Err()
}
