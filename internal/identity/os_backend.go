package identity

import (
	"fmt"
	"os/user"
	"strconv"
)

// OSBackend resolves ids against the local user and group databases.
type OSBackend struct{}

// LookupUser resolves a uid via the system user database.
func (OSBackend) LookupUser(uid uint32) (string, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", fmt.Errorf("lookup uid %d: %w", uid, err)
	}

	return u.Username, nil
}

// LookupGroup resolves a gid via the system group database.
func (OSBackend) LookupGroup(gid uint32) (string, error) {
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return "", fmt.Errorf("lookup gid %d: %w", gid, err)
	}

	return g.Name, nil
}
