package resolver

// UserError is a domain fault: the intent was well-formed but invalid given
// current state. It becomes a targeted Error event to the originating
// session and never mutates state or reaches other players.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}
