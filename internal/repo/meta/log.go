package meta

import (
	"fmt"
	"strings"

	svcsErrors "github.com/keshon/svcs/internal/errors"
	"github.com/keshon/svcs/internal/util"
)

// Record is one entry of the commit log.
type Record struct {
	ID      string
	Author  string
	Message string
}

const (
	commitPrefix = "commit "
	authorPrefix = "Author: "
)

// FormatRecord renders r as the three-line block stored in log.txt.
func FormatRecord(r Record) string {
	return commitPrefix + r.ID + "\n" + authorPrefix + r.Author + "\n" + r.Message
}

// ParseRecords splits log content into records, newest first.
func ParseRecords(content string) ([]Record, error) {
	content = strings.TrimRight(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	var records []Record
	for i, block := range strings.Split(content, "\n\n") {
		lines := strings.SplitN(block, "\n", 3)
		if len(lines) < 2 ||
			!strings.HasPrefix(lines[0], commitPrefix) ||
			!strings.HasPrefix(lines[1], authorPrefix) {
			return nil, fmt.Errorf("record %d: %w", i+1, svcsErrors.ErrMalformedLog)
		}
		r := Record{
			ID:     strings.TrimPrefix(lines[0], commitPrefix),
			Author: strings.TrimPrefix(lines[1], authorPrefix),
		}
		if len(lines) == 3 {
			r.Message = lines[2]
		}
		if r.ID == "" {
			return nil, fmt.Errorf("record %d: empty id: %w", i+1, svcsErrors.ErrMalformedLog)
		}
		records = append(records, r)
	}
	return records, nil
}

// ReadLog returns the log exactly as stored, without its trailing newline.
// An empty string means there are no commits.
func (mc *MetaContext) ReadLog() (string, error) {
	path := mc.Config.LogFile()
	data, err := mc.readOptional(path)
	if err != nil {
		return "", svcsErrors.NewIOError("read", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Records parses the stored log.
func (mc *MetaContext) Records() ([]Record, error) {
	content, err := mc.ReadLog()
	if err != nil {
		return nil, err
	}
	return ParseRecords(content)
}

// PrependRecord writes r in front of the existing log.
func (mc *MetaContext) PrependRecord(r Record) error {
	old, err := mc.ReadLog()
	if err != nil {
		return err
	}

	content := FormatRecord(r) + "\n"
	if old != "" {
		content += "\n" + old + "\n"
	}

	path := mc.Config.LogFile()
	if err := util.WriteFileAtomic(mc.FS, path, []byte(content), 0o644); err != nil {
		return svcsErrors.NewIOError("write", path, err)
	}
	return nil
}
