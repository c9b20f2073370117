package vita3k

// Identity strings used for the preference directory and window title.
const (
	OrgName     = "Vita3K"
	AppName     = "Vita3K"
	WindowTitle = "Vita3K emulator"
)

// Version is the semantic version of the emulator core.
const Version = "0.1.0"
