// Package hidpi switches the desktop between high-DPI and normal display
// scaling: four settings-store keys, a QT_SCALE_FACTOR marker line in the
// session startup script, and the Alacritty font size.
package hidpi

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gfxprof/internal/domain"
	"gfxprof/internal/storage/config"
	"gfxprof/internal/sysexec"
	"gfxprof/internal/textfile"
	"gfxprof/internal/xfconf"
)

// Marker is the line managed in the session startup script. Its presence is
// what identifies the highdpi profile.
const Marker = "export QT_SCALE_FACTOR=2"

var fontSizeRe = regexp.MustCompile(`size = \d+\.\d+`)

// Switcher applies and inspects the display-scaling profiles.
type Switcher struct {
	cfg   *config.Config
	store *xfconf.Client
	out   io.Writer
}

// New creates a switcher. Progress is printed to out.
func New(cfg *config.Config, runner sysexec.Runner, out io.Writer) *Switcher {
	return &Switcher{
		cfg:   cfg,
		store: xfconf.NewClient(runner),
		out:   out,
	}
}

// settings returns the four settings-store keys for a profile.
func settings(profile domain.Profile) []xfconf.Setting {
	if profile == domain.ProfileHighDPI {
		return []xfconf.Setting{
			{Channel: "xsettings", Property: "/Gdk/WindowScalingFactor", Value: "2"},
			{Channel: "xfwm4", Property: "/general/theme", Value: "Default-xhdpi"},
			{Channel: "xsettings", Property: "/Gtk/CursorThemeSize", Value: "42"},
			{Channel: "xsettings", Property: "/Xft/DPI", Value: "95"}, // 192 is correct for 2x but looks better at 95
		}
	}
	return []xfconf.Setting{
		{Channel: "xsettings", Property: "/Gdk/WindowScalingFactor", Value: "1"},
		{Channel: "xfwm4", Property: "/general/theme", Value: "Default"},
		{Channel: "xsettings", Property: "/Gtk/CursorThemeSize", Value: "24"},
		{Channel: "xsettings", Property: "/Xft/DPI", Value: "96"},
	}
}

// Resolve returns the active profile, inferred from the presence of the
// marker line in the session startup script.
func (s *Switcher) Resolve() domain.Profile {
	data, err := os.ReadFile(s.cfg.XSessionRC)
	if err == nil && strings.Contains(string(data), Marker) {
		return domain.ProfileHighDPI
	}
	return domain.ProfileNormal
}

// Apply transitions to the given profile. Settings-store failures are
// printed and skipped; only file errors are returned.
func (s *Switcher) Apply(ctx context.Context, profile domain.Profile) error {
	switch profile {
	case domain.ProfileHighDPI:
		fmt.Fprintln(s.out, "Enabling high-DPI settings...")
	case domain.ProfileNormal:
		fmt.Fprintln(s.out, "Reverting to normal settings...")
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownProfile, profile)
	}

	// Best-effort: each key is individually recoverable, so a failure is
	// printed and the remaining keys are still applied.
	for _, setting := range settings(profile) {
		if err := s.store.Set(ctx, setting); err != nil {
			fmt.Fprintf(s.out, "Command failed: %v\n", err)
		}
	}

	if err := s.applyMarker(profile); err != nil {
		return err
	}
	if err := s.applyFontSize(profile); err != nil {
		return err
	}

	switch profile {
	case domain.ProfileHighDPI:
		fmt.Fprintln(s.out, "High-DPI settings enabled. Please log out and back in.")
	case domain.ProfileNormal:
		fmt.Fprintln(s.out, "Normal settings restored. Please log out and back in.")
	}

	return nil
}

func (s *Switcher) applyMarker(profile domain.Profile) error {
	if profile == domain.ProfileHighDPI {
		changed, err := textfile.EnsureLine(s.cfg.XSessionRC, Marker)
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintf(s.out, "Adding QT_SCALE_FACTOR to %s\n", s.cfg.XSessionRC)
		} else {
			fmt.Fprintf(s.out, "QT_SCALE_FACTOR already set in %s\n", s.cfg.XSessionRC)
		}
		return nil
	}

	removed, err := textfile.RemoveLine(s.cfg.XSessionRC, Marker)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(s.out, "Removing QT_SCALE_FACTOR from %s\n", s.cfg.XSessionRC)
	} else {
		fmt.Fprintf(s.out, "QT_SCALE_FACTOR not found in %s\n", s.cfg.XSessionRC)
	}
	return nil
}

func (s *Switcher) applyFontSize(profile domain.Profile) error {
	size := s.cfg.NormalFontSize
	if profile == domain.ProfileHighDPI {
		size = s.cfg.HighDPIFontSize
	}

	applied, _, err := textfile.Patch(s.cfg.AlacrittyConfig, fontSizeRe, "size = "+size)
	if err != nil {
		return err
	}
	if !applied {
		fmt.Fprintf(s.out, "Alacritty config not found at %s\n", s.cfg.AlacrittyConfig)
		return nil
	}
	fmt.Fprintf(s.out, "Setting Alacritty font size to %s\n", size)
	return nil
}

// Status is the read-only view of the scaling targets.
type Status struct {
	Profile         domain.Profile
	MarkerPresent   bool
	AlacrittyExists bool
	FontSize        string // current "size = N.N" value, empty when unknown
}

// Status inspects the managed files without touching them or invoking any
// external command.
func (s *Switcher) Status() Status {
	st := Status{Profile: s.Resolve()}
	st.MarkerPresent = st.Profile == domain.ProfileHighDPI

	if data, err := os.ReadFile(s.cfg.AlacrittyConfig); err == nil {
		st.AlacrittyExists = true
		st.FontSize = fontSizeRe.FindString(string(data))
	}

	return st
}
