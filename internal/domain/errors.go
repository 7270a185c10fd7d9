package domain

import "errors"

var (
	ErrNotRoot        = errors.New("root privileges required")
	ErrNoNVIDIAGPU    = errors.New("could not detect NVIDIA GPU")
	ErrUnknownProfile = errors.New("unknown profile")
)
