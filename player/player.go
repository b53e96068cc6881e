// Package player implements the playback engines behind a session: mpv driven over JSON-IPC,
// and an in-process simulation for terminals without mpv.
package player

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/playback"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	MPVName       = "mpv"
	SimulatedName = "simulated"
)

var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrHandleClosed  = errors.New("player: handle closed")
)

// Options configures an engine.
type Options struct {
	// TVMode enables the engine's own on-screen controls.
	TVMode bool

	// StatusInterval is the period of status updates.
	StatusInterval time.Duration

	// LoadDelay is how long the simulated engine pretends to buffer.
	LoadDelay time.Duration

	// TitleOf resolves the window title of a media URI.
	TitleOf func(uri string) string

	// DurationOf resolves the length of a media URI for the simulated engine.
	DurationOf func(uri string) time.Duration
}

// OptionsFromConfig reads engine options from the player.* and tv.* settings.
func OptionsFromConfig() Options {
	return Options{
		TVMode:         viper.GetBool(key.TVMode),
		StatusInterval: time.Duration(viper.GetInt(key.PlayerStatusIntervalMs)) * time.Millisecond,
		LoadDelay:      time.Duration(viper.GetInt(key.PlayerSimulatedLoadMs)) * time.Millisecond,
	}
}

func (o Options) interval() time.Duration {
	if o.StatusInterval <= 0 {
		return 200 * time.Millisecond
	}
	return o.StatusInterval
}

func (o Options) title(uri string) string {
	if o.TitleOf == nil {
		return uri
	}
	return o.TitleOf(uri)
}

// Names lists the available engines.
func Names() []string {
	return []string{MPVName, SimulatedName}
}

// New returns the engine called name.
func New(name string, opts Options) (playback.Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MPVName:
		return NewMPV(opts), nil
	case SimulatedName:
		return NewSimulated(opts), nil
	}

	closest := lo.MinBy(Names(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownEngine, name, closest)
}

// CheckDependencies verifies the external programs the named engine needs are installed.
func CheckDependencies(name string) error {
	if strings.ToLower(name) != MPVName {
		return nil
	}
	if _, err := exec.LookPath("mpv"); err != nil {
		return fmt.Errorf("mpv is required for the mpv engine (or set %s = %q): %w", key.PlayerEngine, SimulatedName, err)
	}
	return nil
}
