// Package repository defines the interfaces for the persistence layer.
package repository

// Subscription is a standing live query. Close stops further callbacks and
// may be called any number of times.
type Subscription interface {
	Close()
}
