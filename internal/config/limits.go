package config

const (
	// MaxTitleLength is the maximum length for document titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxTitleLength = 255

	// MaxContentLength is the maximum length for document content.
	// 1MB of formatted text is far beyond what the editor produces.
	MaxContentLength = 1 << 20

	// MaxUsernameLength is the maximum length for usernames.
	MaxUsernameLength = 64

	// MinPasswordLength is the minimum length for passwords.
	MinPasswordLength = 8

	// MaxPasswordLength is the maximum length for passwords.
	// bcrypt only uses the first 72 bytes of input.
	MaxPasswordLength = 72
)
