package domain

// Profile is a named target configuration state. Each switcher manages its
// own pair of profiles; the active one is always inferred from filesystem
// markers, never from a stored value.
type Profile string

const (
	// High-DPI switcher profiles
	ProfileHighDPI Profile = "highdpi"
	ProfileNormal  Profile = "normal"

	// GPU switcher profiles
	ProfileNVIDIA Profile = "nvidia"
	ProfileIntel  Profile = "intel"
)

// String returns the profile name as used on the command line.
func (p Profile) String() string {
	return string(p)
}
