package xfconf

import (
	"context"
	"errors"
	"testing"

	"gfxprof/internal/sysexec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Set(t *testing.T) {
	fake := sysexec.NewFake()
	client := NewClient(fake)

	err := client.Set(context.Background(), Setting{
		Channel:  "xsettings",
		Property: "/Gdk/WindowScalingFactor",
		Value:    "2",
	})
	require.NoError(t, err)

	assert.True(t, fake.CalledWith("xfconf-query", "-c", "xsettings", "-p", "/Gdk/WindowScalingFactor", "-s", "2"))
}

func TestClient_SetPropagatesFailure(t *testing.T) {
	fake := sysexec.NewFake()
	fake.Errs["xfconf-query"] = errors.New("xfconf-query exited with code 1: no such channel")
	client := NewClient(fake)

	err := client.Set(context.Background(), Setting{Channel: "xfwm4", Property: "/general/theme", Value: "Default"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such channel")
}
