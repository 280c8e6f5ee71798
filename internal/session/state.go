package session

import (
	"fmt"

	"auction-gateway/internal/auctionerrors"
)

// State is the authentication state of the gateway's single session
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticatedNoKey
	StateAuthenticatedWithKey
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticatedNoKey:
		return "authenticated-no-key"
	case StateAuthenticatedWithKey:
		return "authenticated-with-key"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Authenticated reports whether a token is held
func (s State) Authenticated() bool {
	return s == StateAuthenticatedNoKey || s == StateAuthenticatedWithKey
}

// Event drives a state transition
type Event int

const (
	EventLoginStarted Event = iota
	EventAuthSucceeded
	EventAuthFailed
	EventKeyCreated
	EventSessionRestored
	EventLoggedOut
)

func (e Event) String() string {
	switch e {
	case EventLoginStarted:
		return "login-started"
	case EventAuthSucceeded:
		return "auth-succeeded"
	case EventAuthFailed:
		return "auth-failed"
	case EventKeyCreated:
		return "key-created"
	case EventSessionRestored:
		return "session-restored"
	case EventLoggedOut:
		return "logged-out"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// next returns the state reached from s on e
func next(s State, e Event) (State, error) {
	if e == EventLoggedOut {
		return StateAnonymous, nil
	}

	switch s {
	case StateAnonymous:
		switch e {
		case EventLoginStarted:
			return StateAuthenticating, nil
		case EventSessionRestored:
			return StateAuthenticatedNoKey, nil
		}
	case StateAuthenticating:
		switch e {
		case EventAuthSucceeded:
			return StateAuthenticatedNoKey, nil
		case EventAuthFailed:
			return StateAnonymous, nil
		}
	case StateAuthenticatedNoKey, StateAuthenticatedWithKey:
		if e == EventKeyCreated {
			return StateAuthenticatedWithKey, nil
		}
	}
	return s, fmt.Errorf("%w: %s on %s", auctionerrors.ErrIllegalTransition, s, e)
}
