package entity

// FeedEventKind names the part of the feed state that changed.
type FeedEventKind string

const (
	FeedEventPhotos        FeedEventKind = "photos"
	FeedEventUsers         FeedEventKind = "users"
	FeedEventNotifications FeedEventKind = "notifications"
	FeedEventSession       FeedEventKind = "session"
)

// FeedEvent tells observers to re-render part of the feed.
type FeedEvent struct {
	Kind FeedEventKind `json:"kind"`
}
