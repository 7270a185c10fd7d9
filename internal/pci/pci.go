// Package pci locates the discrete NVIDIA GPU on the PCI bus and translates
// its address into the form the Xorg nvidia driver expects.
package pci

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gfxprof/internal/domain"
	"gfxprof/internal/sysexec"
)

// BusID converts an lspci address of the form "BB:DD.F" into the Xorg
// BusID form "PCI:bus:device:function". Bus and device are hexadecimal in
// lspci output and decimal in the Xorg form; the function is decimal in both.
func BusID(addr string) (string, error) {
	parts := strings.Split(strings.ReplaceAll(addr, ".", ":"), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("malformed PCI address %q", addr)
	}

	bus, err := strconv.ParseInt(parts[0], 16, 32)
	if err != nil {
		return "", fmt.Errorf("malformed PCI address %q: %w", addr, err)
	}
	dev, err := strconv.ParseInt(parts[1], 16, 32)
	if err != nil {
		return "", fmt.Errorf("malformed PCI address %q: %w", addr, err)
	}
	fn, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		return "", fmt.Errorf("malformed PCI address %q: %w", addr, err)
	}

	return fmt.Sprintf("PCI:%d:%d:%d", bus, dev, fn), nil
}

// Detect enumerates PCI devices via lspci and returns the BusID of the first
// NVIDIA VGA or 3D controller. Returns domain.ErrNoNVIDIAGPU when no such
// device is listed or the listing command fails.
func Detect(ctx context.Context, runner sysexec.Runner) (string, error) {
	out, err := runner.Run(ctx, "lspci", "-nn")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNoNVIDIAGPU, err)
	}

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "NVIDIA") {
			continue
		}
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		busid, err := BusID(fields[0])
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrNoNVIDIAGPU, err)
		}
		return busid, nil
	}

	return "", domain.ErrNoNVIDIAGPU
}
