package config

const (
	// MaxPostTextLength is the maximum length for post text.
	// Posts are short-form; text may be empty.
	MaxPostTextLength = 1000

	// MaxBioLength is the maximum length for profile bios.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (bios should be short and descriptive).
	MaxBioLength = 255

	// MaxLocationLength is the maximum length for profile locations.
	MaxLocationLength = 255

	// MaxWebsiteLength is the maximum length for profile website URLs.
	MaxWebsiteLength = 255
)
