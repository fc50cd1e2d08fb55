package entity

import (
	"slices"
	"time"
)

// Photo is a shared image record on the wall.
type Photo struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"image_url"`      // Download URL returned by the object store.
	StoragePath  string    `json:"storage_path"`   // Object key, used for optional blob cleanup.
	Caption      string    `json:"caption"`        // Stored exactly as entered.
	UserID       string    `json:"user_id"`        // Owner identity id.
	UserName     string    `json:"user_name"`      // Owner name at upload time.
	UserPhotoURL string    `json:"user_photo_url"` // Owner avatar at upload time, may be empty.
	Likes        []string  `json:"likes"`          // Identity ids, no duplicates.
	Comments     []Comment `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Comment is a reserved photo comment shape. Posting comments is not supported yet.
type Comment struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOwnedBy reports whether uid uploaded the photo.
func (p *Photo) IsOwnedBy(uid string) bool {
	return uid != "" && p.UserID == uid
}

// IsLikedBy reports whether uid is in the like set.
func (p *Photo) IsLikedBy(uid string) bool {
	return slices.Contains(p.Likes, uid)
}

// LikeCount returns the number of distinct likers.
func (p *Photo) LikeCount() int {
	return len(p.Likes)
}

// CommentCount returns the number of comments.
func (p *Photo) CommentCount() int {
	return len(p.Comments)
}

// Clone deep-copies the slices so callers can't mutate shared state.
func (p *Photo) Clone() *Photo {
	c := *p
	c.Likes = slices.Clone(p.Likes)
	c.Comments = slices.Clone(p.Comments)

	return &c
}

// ChangeKind is the kind of a live query change.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// PhotoChange is one document change reported by a live photo query.
type PhotoChange struct {
	Kind  ChangeKind
	Photo *Photo
}

// PhotoChangeSet is one delivery of a live photo query. The first delivery
// of every subscription has Initial set and lists the current window as added.
type PhotoChangeSet struct {
	Initial bool
	Changes []PhotoChange
}
