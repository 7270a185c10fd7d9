// Package gpu switches the machine between the discrete NVIDIA GPU and
// integrated graphics by rewriting the Xorg OutputClass configuration, the
// LightDM seat setup, and optionally a udev rule set that powers the card
// down entirely.
package gpu

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-ini/ini"

	"gfxprof/internal/domain"
	"gfxprof/internal/pci"
	"gfxprof/internal/storage/config"
	"gfxprof/internal/sysexec"
	"gfxprof/internal/textfile"
)

// Options modify an intel transition.
type Options struct {
	// PowerDown installs udev rules that remove the card from the bus on
	// boot. Only meaningful for the intel profile.
	PowerDown bool
}

// Switcher applies and inspects the GPU profiles.
type Switcher struct {
	cfg    *config.Config
	runner sysexec.Runner
	out    io.Writer
}

// New creates a switcher. Progress is printed to out.
func New(cfg *config.Config, runner sysexec.Runner, out io.Writer) *Switcher {
	return &Switcher{cfg: cfg, runner: runner, out: out}
}

// Resolve returns the active profile. The generated Xorg config is the
// marker: its presence means the NVIDIA profile, its absence integrated
// graphics. The advisory state file is deliberately not consulted.
func (s *Switcher) Resolve() domain.Profile {
	if textfile.Exists(s.cfg.XorgConf) {
		return domain.ProfileNVIDIA
	}
	return domain.ProfileIntel
}

// PoweredDown reports whether the power-down rule set is installed.
func (s *Switcher) PoweredDown() bool {
	return textfile.Exists(s.cfg.UdevRules)
}

// Apply transitions to the given profile.
func (s *Switcher) Apply(ctx context.Context, profile domain.Profile, opts Options) error {
	switch profile {
	case domain.ProfileNVIDIA:
		return s.applyNVIDIA(ctx)
	case domain.ProfileIntel:
		return s.applyIntel(ctx, opts)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownProfile, profile)
	}
}

func (s *Switcher) applyNVIDIA(ctx context.Context) error {
	fmt.Fprintln(s.out, "Switching to NVIDIA GPU...")

	// The card must be back on the bus before we can detect it.
	removed, err := textfile.Remove(s.cfg.UdevRules)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(s.out, "Removed udev rules: %s\n", s.cfg.UdevRules)
		s.reloadUdev(ctx)
	}

	busid, err := pci.Detect(ctx, s.runner)
	if err != nil {
		fmt.Fprintln(s.out, "Error: Could not detect NVIDIA GPU BusID")
		fmt.Fprintln(s.out, "Make sure NVIDIA drivers are installed and the GPU is detected by lspci")
		fmt.Fprintln(s.out, "If GPU was powered down, a reboot may be required first")
		return err
	}
	fmt.Fprintf(s.out, "Detected NVIDIA GPU at BusID: %s\n", busid)

	if err := textfile.Write(s.cfg.XorgConf, fmt.Sprintf(xorgConfTemplate, busid), 0644); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created NVIDIA config at %s\n", s.cfg.XorgConf)

	if err := textfile.Write(s.cfg.LightDMScript, lightdmScript, 0755); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created LightDM setup script at %s\n", s.cfg.LightDMScript)

	if err := s.writeLightDMConf(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created LightDM config at %s\n", s.cfg.LightDMConf)

	s.saveState(string(domain.ProfileNVIDIA))

	fmt.Fprintln(s.out, "Switched to NVIDIA GPU")
	s.printRestartInstructions()
	return nil
}

func (s *Switcher) applyIntel(ctx context.Context, opts Options) error {
	fmt.Fprintln(s.out, "Switching to integrated graphics...")

	removed, err := textfile.Remove(s.cfg.XorgConf)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(s.out, "Removed NVIDIA config: %s\n", s.cfg.XorgConf)
	} else {
		fmt.Fprintln(s.out, "NVIDIA config not found, already using integrated graphics")
	}

	if removed, err := textfile.Remove(s.cfg.LightDMScript); err != nil {
		return err
	} else if removed {
		fmt.Fprintf(s.out, "Removed LightDM setup script: %s\n", s.cfg.LightDMScript)
	}

	if removed, err := textfile.Remove(s.cfg.LightDMConf); err != nil {
		return err
	} else if removed {
		fmt.Fprintf(s.out, "Removed LightDM config: %s\n", s.cfg.LightDMConf)
	}

	state := string(domain.ProfileIntel)
	if opts.PowerDown {
		if err := textfile.Write(s.cfg.UdevRules, udevRules, 0644); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Created udev rules for GPU power down: %s\n", s.cfg.UdevRules)
		s.reloadUdev(ctx)
		fmt.Fprintln(s.out, "GPU will be powered down on next reboot")
		state += "-powerdown"
	} else {
		removed, err := textfile.Remove(s.cfg.UdevRules)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(s.out, "Removed udev rules: %s\n", s.cfg.UdevRules)
			s.reloadUdev(ctx)
		}
	}

	s.saveState(state)

	fmt.Fprintln(s.out, "Switched to integrated graphics")
	if opts.PowerDown {
		fmt.Fprintln(s.out, "GPU power down enabled (will take effect after reboot)")
	}
	s.printRestartInstructions()
	return nil
}

// writeLightDMConf writes the conf.d fragment that points LightDM at the
// seat setup script.
func (s *Switcher) writeLightDMConf() error {
	f := ini.Empty()
	sec, err := f.NewSection("Seat:*")
	if err != nil {
		return fmt.Errorf("building LightDM config: %w", err)
	}
	if _, err := sec.NewKey("display-setup-script", s.cfg.LightDMScript); err != nil {
		return fmt.Errorf("building LightDM config: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return fmt.Errorf("building LightDM config: %w", err)
	}

	return textfile.Write(s.cfg.LightDMConf, buf.String(), 0644)
}

// reloadUdev asks the rule engine to pick up the changed rule set.
// Best-effort: a failure is printed and the switch continues.
func (s *Switcher) reloadUdev(ctx context.Context) {
	if _, err := s.runner.Run(ctx, "udevadm", "control", "--reload-rules"); err != nil {
		fmt.Fprintf(s.out, "Command failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Reloaded udev rules")
}

// saveState writes the advisory state file. It is never read back by
// Resolve; a failure is worth a line, not an abort.
func (s *Switcher) saveState(state string) {
	if err := textfile.Write(s.cfg.StateFile, state, 0644); err != nil {
		fmt.Fprintf(s.out, "Warning: could not write state file: %v\n", err)
	}
}

func (s *Switcher) printRestartInstructions() {
	fmt.Fprintln(s.out, "Please restart your display manager or reboot for changes to take effect")
	fmt.Fprintln(s.out, "  Reboot: sudo reboot")
	fmt.Fprintln(s.out, "  Or restart display manager (LightDM): sudo systemctl restart lightdm")
}

// Status is the read-only view of the GPU profile markers.
type Status struct {
	Profile       domain.Profile
	PowerDown     bool
	XorgConf      bool
	LightDMScript bool
	LightDMConf   bool
	// SetupScript is the display-setup-script value parsed from the
	// LightDM fragment, empty when the fragment is absent or unreadable.
	SetupScript string
}

// Status inspects the managed files without touching them or invoking any
// external command. It needs no privilege.
func (s *Switcher) Status() Status {
	st := Status{
		Profile:       s.Resolve(),
		PowerDown:     s.PoweredDown(),
		XorgConf:      textfile.Exists(s.cfg.XorgConf),
		LightDMScript: textfile.Exists(s.cfg.LightDMScript),
		LightDMConf:   textfile.Exists(s.cfg.LightDMConf),
	}

	if st.LightDMConf {
		if f, err := ini.Load(s.cfg.LightDMConf); err == nil {
			st.SetupScript = f.Section("Seat:*").Key("display-setup-script").String()
		}
	}

	return st
}

// Geteuid reports the effective uid; swapped out in tests to exercise the
// unprivileged path.
var Geteuid = os.Geteuid

// CheckRoot returns ErrNotRoot unless the process runs with euid 0. Every
// mutating command calls this before touching anything.
func CheckRoot() error {
	if Geteuid() != 0 {
		return fmt.Errorf("%w: this command must be run as root (use sudo)", domain.ErrNotRoot)
	}
	return nil
}
