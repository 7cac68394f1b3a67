package meta

import (
	"strings"

	svcsErrors "github.com/keshon/svcs/internal/errors"
	"github.com/keshon/svcs/internal/util"
)

// GetUsername returns the stored username, or "" if none was set.
func (mc *MetaContext) GetUsername() (string, error) {
	path := mc.Config.ConfigFile()
	data, err := mc.readOptional(path)
	if err != nil {
		return "", svcsErrors.NewIOError("read", path, err)
	}
	name, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(name), nil
}

// SetUsername replaces the stored username.
func (mc *MetaContext) SetUsername(name string) error {
	path := mc.Config.ConfigFile()
	if err := util.WriteFileAtomic(mc.FS, path, []byte(name), 0o644); err != nil {
		return svcsErrors.NewIOError("write", path, err)
	}
	return nil
}
