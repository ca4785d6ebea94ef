package config

const (
	// DefaultMaxUploadBytes caps a whole multipart upload request.
	// 100MB covers typical shared-drive use; streaming larger files is
	// out of scope.
	DefaultMaxUploadBytes = 100 << 20
)
