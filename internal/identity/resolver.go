// Package identity resolves numeric uid/gid pairs to the display names
// used as aggregation keys in the summary report.
package identity

import "fmt"

// Backend looks up names for numeric ids. Lookups may fail when an id
// has no name mapping; the resolver then falls back to the printable
// "#<id>" convention.
type Backend interface {
	LookupUser(uid uint32) (string, error)
	LookupGroup(gid uint32) (string, error)
}

// Resolver memoizes uid/gid resolution. The same pair recurs across
// millions of inventory records, so every layer is cached: user names,
// group names, and the combined display string.
//
// A Resolver is scoped to one scan: the expected group and the special
// group are fixed for its lifetime, which keeps the display string a
// pure function of the (uid, gid) pair.
type Resolver struct {
	backend       Backend
	expectedGroup string
	specialGroup  string

	users   map[uint32]string
	groups  map[uint32]string
	display map[uint64]string
}

// NewResolver creates a resolver scoped to the given expected group and
// special group. An empty special group never matches.
func NewResolver(backend Backend, expectedGroup, specialGroup string) *Resolver {
	return &Resolver{
		backend:       backend,
		expectedGroup: expectedGroup,
		specialGroup:  specialGroup,
		users:         make(map[uint32]string),
		groups:        make(map[uint32]string),
		display:       make(map[uint64]string),
	}
}

// User resolves a uid to a user name, falling back to "#<uid>".
func (r *Resolver) User(uid uint32) string {
	name, ok := r.users[uid]
	if ok {
		return name
	}

	name, err := r.backend.LookupUser(uid)
	if err != nil {
		name = fmt.Sprintf("#%d", uid)
	}

	r.users[uid] = name

	return name
}

// Group resolves a gid to a group name, falling back to "#<gid>".
func (r *Resolver) Group(gid uint32) string {
	name, ok := r.groups[gid]
	if ok {
		return name
	}

	name, err := r.backend.LookupGroup(gid)
	if err != nil {
		name = fmt.Sprintf("#%d", gid)
	}

	r.groups[gid] = name

	return name
}

// Display resolves a uid/gid pair to the owner display string: the bare
// user name when the object's group is the expected group, or when the
// expected group is the special group (which opts out of the group
// match entirely); otherwise "user:group" to surface cross-group
// ownership.
func (r *Resolver) Display(uid, gid uint32) string {
	key := uint64(uid)<<32 | uint64(gid)

	name, ok := r.display[key]
	if ok {
		return name
	}

	user := r.User(uid)

	group := r.Group(gid)
	if group == r.expectedGroup || r.expectedGroup == r.specialGroup {
		name = user
	} else {
		name = user + ":" + group
	}

	r.display[key] = name

	return name
}
