package model

// Subscription is a live store listener. Close releases it and may be called
// more than once.
type Subscription interface {
	Close() error
}
