package usecase

import (
	"context"

	"wedump/internal/domain/entity"
)

// Page is a navigation target of the single page client.
type Page string

const (
	PageHome    Page = "home"
	PageProfile Page = "profile"
	PageFriends Page = "friends"
	PageAlbums  Page = "albums"
)

// IsValid reports whether p names a known page.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageProfile, PageFriends, PageAlbums:
		return true
	default:
		return false
	}
}

// FeedStats are the sidebar counters.
type FeedStats struct {
	TotalPhotos int `json:"total_photos"`
	MyUploads   int `json:"my_uploads"`
	ActiveUsers int `json:"active_users"`
	Friends     int `json:"friends"`
}

// UploadPhotoInput is an upload request.
type UploadPhotoInput struct {
	File    *entity.ImageFile
	Caption string
}

// LikeResult reports the like state after a toggle.
type LikeResult struct {
	PhotoID string `json:"photo_id"`
	Liked   bool   `json:"liked"`
}

// FeedListener observes feed state changes.
type FeedListener func(ctx context.Context, event entity.FeedEvent)

// FeedUsecase owns the photo wall, the user list and the notification inbox
// for the current session.
type FeedUsecase interface {
	LoadPhotos(ctx context.Context) error
	LoadUsers(ctx context.Context) error
	LoadNotifications(ctx context.Context) error

	UploadPhoto(ctx context.Context, input UploadPhotoInput) (*entity.Photo, error)
	PreviewImage(ctx context.Context, file *entity.ImageFile) (string, error)
	ToggleLike(ctx context.Context, photoID string) (*LikeResult, error)
	DeletePhoto(ctx context.Context, photoID string) error
	CommentOnPhoto(ctx context.Context, photoID, text string) error
	MarkNotificationRead(ctx context.Context, notificationID string) error

	StartRealtimeSync(ctx context.Context) error
	StopRealtimeSync()

	NavigateTo(ctx context.Context, page Page) error
	CurrentPage() Page

	// Snapshots of the current state. Returned slices are copies.
	Photos() []*entity.Photo
	Users() []*entity.UserProfile
	Notifications() []*entity.Notification
	Stats() FeedStats

	// Subscribe registers a state change listener and returns its disposer.
	Subscribe(listener FeedListener) (unsubscribe func())

	// Close detaches from the session and stops live queries.
	Close()
}
