package store

import "errors"

var (
	// ErrNotFound covers any lookup or mutation that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateTitle is raised when a blog title is already taken.
	ErrDuplicateTitle = errors.New("title already exists")
	// ErrDuplicateUsername is raised when registering a taken username.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrNotOwner means the token was valid but the principal does not
	// own the resource being mutated.
	ErrNotOwner = errors.New("not the owner")
)

// authorizeOwner is the ownership guard: a pure comparison between the
// resource's recorded owner and the authenticated principal, checked
// before every update or delete.
func authorizeOwner(owner, principal string) error {
	if owner != principal {
		return ErrNotOwner
	}
	return nil
}
