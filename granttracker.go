package loom

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// ConflictError reports that a requested access could not be granted
// because it overlaps with an already-active grant. Recoverable at the
// shard-request boundary: callers decide whether to retry, skip, or
// abort.
type ConflictError struct {
	Request AccessRequest
	cause   error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("loom: access conflict for request %+v", e.Request)
}

func (e *ConflictError) Unwrap() error { return e.cause }

func newConflictError(req AccessRequest) *ConflictError {
	err := &ConflictError{Request: req}
	err.cause = bark.AddTrace(fmt.Errorf("loom: requested access conflicts with an active grant"))
	return err
}

// grantTracker is a single-threaded record of active grants, owned by
// the World. Shards must be released (their grant removed) before the
// world issues a conflicting grant elsewhere.
type grantTracker struct {
	active []AccessGrant
}

func newGrantTracker() *grantTracker {
	return &grantTracker{}
}

// checkAndGrant scans active grants for a conflict with req; on success
// it records and returns the new grant, otherwise it returns a
// *ConflictError naming the offending request.
func (t *grantTracker) checkAndGrant(req AccessRequest) (AccessGrant, error) {
	for _, g := range t.active {
		if g.ConflictsWith(req) {
			return AccessGrant{}, newConflictError(req)
		}
	}
	grant := AccessGrant{req.access}
	t.active = append(t.active, grant)
	return grant, nil
}

// remove locates grant by value equality and swap-removes it. Panics if
// the grant isn't found — releasing a grant that was never issued, or
// releasing twice, is a programmer error.
func (t *grantTracker) remove(grant AccessGrant) {
	for i, g := range t.active {
		if g.access.equals(grant.access) {
			last := len(t.active) - 1
			t.active[i] = t.active[last]
			t.active = t.active[:last]
			return
		}
	}
	panic(bark.AddTrace(fmt.Errorf("loom: released a grant that was not active")))
}
