package repository

import "time"

// LibraryAsset represents an exported image stored in the media library.
type LibraryAsset struct {
	ID        string
	FileName  string
	SourceURI string
	MediaType string
	ByteSize  int64
	Width     int
	Height    int
	CreatedAt time.Time
}

// PermissionRecord is the last answer given for a permission scope.
type PermissionRecord struct {
	Scope     string
	Status    string
	UpdatedAt time.Time
}
