package entity

import "time"

// Photo is an image in a member's gallery.
type Photo struct {
	ID                int64   // Server-assigned.
	URL               string  // Public URL of the stored object.
	ExternalStorageID *string // Blob store key; nil for photos not managed by the blob store (e.g. seeded URLs).
	MemberID          string  // Owning member.
	CreatedAt         time.Time
}

// StoredObject is what the blob store returns for an accepted upload.
type StoredObject struct {
	URL       string
	StorageID string
}
