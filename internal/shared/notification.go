package shared

import "time"

// Notification is a transient message shown to the user with a dismiss label.
type Notification struct {
	Message string
	Label   string
	Error   bool
	TTL     time.Duration
}

// Notifier builds notifications with the configured label and duration.
type Notifier struct {
	label string
	ttl   time.Duration
}

// NewNotifier creates a [Notifier] from the notification settings.
func NewNotifier(cfg NotificationConfig) Notifier {
	label := cfg.DismissLabel
	if label == "" {
		label = "Ok"
	}
	return Notifier{label: label, ttl: cfg.Duration()}
}

// Info returns a success notification.
func (n Notifier) Info(msg string) Notification {
	return Notification{Message: msg, Label: n.label, TTL: n.ttl}
}

// Failure returns an error notification carrying err's message.
func (n Notifier) Failure(err error) Notification {
	return Notification{Message: err.Error(), Label: n.label, TTL: n.ttl, Error: true}
}

// TTL reports how long notifications stay visible.
func (n Notifier) TTL() time.Duration {
	return n.ttl
}

// User facing messages shown after successful actions.
const (
	MsgLoggedIn          = "User logged in successfully!"
	MsgRegistered        = "Registration complete, please login"
	MsgProfileUpdated    = "Profile updated successfully!"
	MsgAccountDeleted    = "Your account has been deleted!"
	MsgFavoriteAdded     = "Added to favourites!"
	MsgFavoriteRemoved   = "Removed from favourites!"
	MsgLoggedOut         = "You have logged out!"
	MsgFavoriteRemovedOf = "%s has been removed from your favorites!"
)
