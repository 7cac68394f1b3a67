package repo

import "fmt"

// Kind classifies the outcome of a repository operation.
type Kind int

const (
	OK Kind = iota
	MissingArgument
	NotFound
	NoOp
	Unconfigured
	IoFailure
)

func (k Kind) String() string {
	switch k {
	case OK:
		return "ok"
	case MissingArgument:
		return "missing argument"
	case NotFound:
		return "not found"
	case NoOp:
		return "no-op"
	case Unconfigured:
		return "unconfigured"
	case IoFailure:
		return "i/o failure"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Result is what a command reports to the user: exactly one of them per
// operation.
type Result struct {
	Kind Kind
	Text string
}

// Message is the text printed for the result.
func (r Result) Message() string { return r.Text }

func (r Result) String() string { return r.Kind.String() + ": " + r.Text }

// Failure turns an error into the result printed for it.
func Failure(err error) Result {
	return Result{Kind: IoFailure, Text: "Error: " + err.Error()}
}

func result(k Kind, format string, args ...any) Result {
	return Result{Kind: k, Text: fmt.Sprintf(format, args...)}
}

const (
	msgWhoAreYou      = "Please, tell me who you are."
	msgUsername       = "The username is %s."
	msgAddUsage       = "Add a file to the index."
	msgTrackedFiles   = "Tracked files:"
	msgCantFind       = "Can't find '%s'."
	msgTracked        = "The file '%s' is tracked."
	msgAlreadyTracked = "The file '%s' is already tracked."
	msgIgnored        = "The file '%s' is ignored."
	msgNoCommits      = "No commits yet."
	msgNoMessage      = "Message was not passed."
	msgNothing        = "Nothing to commit."
	msgCommitted      = "Changes are committed."
	msgNoCommitID     = "Commit id was not passed."
	msgNoSuchCommit   = "Commit does not exist."
	msgSwitched       = "Switched to commit %s."
)
