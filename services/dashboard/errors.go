package dashboard

import "errors"

var (
	// ErrSubscription wraps transport or auth failures of a push subscription.
	ErrSubscription = errors.New("subscription failed")

	// ErrMutation wraps a failed create, update, delete or transition write.
	ErrMutation = errors.New("remote write failed")

	// ErrTransitionNotAllowed is returned when a status change is not permitted.
	ErrTransitionNotAllowed = errors.New("status transition not allowed")

	// ErrSessionClosed is returned by entry points after Close.
	ErrSessionClosed = errors.New("dashboard session closed")

	// ErrAlreadySubscribed is returned when a mirror is run twice.
	ErrAlreadySubscribed = errors.New("mirror already subscribed")
)
