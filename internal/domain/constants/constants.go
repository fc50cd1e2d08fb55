// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Identity providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderMemory   = "memory"
)

// Document store providers
const (
	StoreProviderFirestore = "firestore"
	StoreProviderMemory    = "memory"
)

// Document store collections
const (
	CollectionPhotos        = "photos"
	CollectionUsers         = "users"
	CollectionNotifications = "notifications"
)
