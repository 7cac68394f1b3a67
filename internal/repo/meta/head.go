package meta

import (
	"fmt"
	"strings"

	svcsErrors "github.com/keshon/svcs/internal/errors"
)

// Head is the latest commit as seen from the top of the log.
type Head struct {
	LastID string
}

// NoCommits reports whether the log is still empty.
func (h Head) NoCommits() bool { return h.LastID == "" }

func (h Head) String() string {
	if h.NoCommits() {
		return "(no commits)"
	}
	return h.LastID
}

// GetHead reads only the first line of the log.
func (mc *MetaContext) GetHead() (Head, error) {
	content, err := mc.ReadLog()
	if err != nil {
		return Head{}, err
	}
	if strings.TrimSpace(content) == "" {
		return Head{}, nil
	}

	first, _, _ := strings.Cut(content, "\n")
	id, ok := strings.CutPrefix(strings.TrimSpace(first), commitPrefix)
	if !ok || id == "" {
		return Head{}, fmt.Errorf("read head: %w", svcsErrors.ErrMalformedLog)
	}
	return Head{LastID: id}, nil
}
