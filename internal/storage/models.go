package storage

import "time"

// Capsule visibility scopes.
const (
	VisibilityPrivate = "private"
	VisibilityGroup   = "group"
	VisibilityPublic  = "public"
)

// Capsule gating states. StateOpen is an ungated capsule with no timer; it is
// never produced by creation but remains a valid persisted value. The only
// transition after creation is StateLocked -> StateUnlocked, performed by the
// unlock sweep. The feed selects StateUnlocked rows only.
const (
	StateOpen     = "open"
	StateLocked   = "locked"
	StateUnlocked = "unlocked"
)

// Item content kinds.
const (
	KindText  = "text"
	KindImage = "image"
	KindAudio = "audio"
)

// CapsuleRecord represents a capsule row in the database.
type CapsuleRecord struct {
	ID          string
	Title       string
	Description string
	Visibility  string
	State       string
	UnlockAt    *time.Time // nil means the capsule was never time-gated
	CreatedAt   time.Time
}

// ItemRecord represents an item row in the database. The item's embedding
// lives in the vector store under the same ID; it is never stored here.
type ItemRecord struct {
	ID          string
	CapsuleID   string
	Author      string
	Kind        string // KindText, KindImage or KindAudio
	TextContent string // set for text items
	MediaURL    string // set for image/audio items
	MimeType    string
	SizeBytes   int64
	CreatedAt   time.Time
}

// FeedItem is an item row joined with its owning capsule, as returned by the
// public feed.
type FeedItem struct {
	ItemRecord
	CapsuleTitle      string
	CapsuleVisibility string
}

// CommentRecord represents a comment on an item.
type CommentRecord struct {
	ID         int64
	ItemID     string
	UserHandle string
	Text       string
	CreatedAt  time.Time
}

// InviteRecord represents an invitation to a capsule.
type InviteRecord struct {
	ID              int64
	CapsuleID       string
	InviteeEmail    string
	InviteeUsername string
	Status          string
	CreatedAt       time.Time
}

// InitialState decides a freshly created capsule's state from its unlock time.
// A future unlock time gates the capsule; an absent or already-passed one
// (including exactly now) leaves it unlocked with zero sweeps required.
func InitialState(unlockAt *time.Time, now time.Time) string {
	if unlockAt == nil || !unlockAt.After(now) {
		return StateUnlocked
	}
	return StateLocked
}

// TimeRemaining returns the display-only countdown until the unlock time,
// clamped at zero. Gating decisions must use the persisted state, never this.
func TimeRemaining(unlockAt *time.Time, now time.Time) time.Duration {
	if unlockAt == nil {
		return 0
	}
	d := unlockAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
