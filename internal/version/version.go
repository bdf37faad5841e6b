package version

// Build information set by ldflags
var (
	Version = "dev"     // -X honnef.co/go/transition/internal/version.Version=...
	Commit  = "unknown" // -X honnef.co/go/transition/internal/version.Commit=...
	Date    = "unknown" // -X honnef.co/go/transition/internal/version.Date=...
)
