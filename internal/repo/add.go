package repo

import (
	"strings"

	"github.com/keshon/svcs/internal/repo/store/file"
)

// Add tracks path, or lists the tracked files when path is empty.
func (r *Repository) Add(path string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		tracked, err := r.Store.FileCtx.LoadIndex()
		if err != nil {
			return Result{}, err
		}
		if len(tracked) == 0 {
			return result(MissingArgument, msgAddUsage), nil
		}
		return Result{Kind: OK, Text: msgTrackedFiles + "\n" + strings.Join(tracked, "\n")}, nil
	}

	outcome, clean, err := r.Store.FileCtx.AppendIndex(path)
	if err != nil {
		return Result{}, err
	}
	switch outcome {
	case file.Tracked:
		return result(OK, msgTracked, clean), nil
	case file.AlreadyTracked:
		return result(NoOp, msgAlreadyTracked, clean), nil
	case file.Ignored:
		return result(NoOp, msgIgnored, clean), nil
	default:
		return result(NotFound, msgCantFind, path), nil
	}
}
