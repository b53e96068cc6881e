package player

import (
	"crypto/rand"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/log"
	"github.com/movieflix-cli/movieflix/playback"
	"github.com/movieflix-cli/movieflix/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// MPV launches one mpv process per attached media.
type MPV struct {
	opts Options
}

func NewMPV(opts Options) *MPV {
	return &MPV{opts: opts}
}

// Attach starts mpv on uri and blocks until its IPC socket accepts connections.
func (m *MPV) Attach(uri string) (playback.Handle, error) {
	target, err := sanitizeMediaTarget(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	socket, err := newSocketPath()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command("mpv", buildArgs(socket, sanitizeTitle(m.opts.title(uri)), target, m.opts.TVMode)...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start mpv: %w", err)
	}

	h := &mpvHandle{
		socketPath: socket,
		cmd:        cmd,
		exited:     make(chan struct{}),
		pump:       newPump(),
	}

	go func() {
		_ = cmd.Wait()
		close(h.exited)
	}()

	if err := h.waitForSocket(); err != nil {
		select {
		case <-h.exited:
		default:
			log.Warn("killing mpv: socket never became ready")
			_ = killProcess(cmd)
		}
		_ = os.Remove(socket)
		return nil, fmt.Errorf("mpv socket not ready: %w", err)
	}

	if err := h.listen(m.opts.interval()); err != nil {
		_ = h.Close()
		return nil, err
	}

	log.Infof("mpv: playing %s (socket %s)", target, socket)
	return h, nil
}

func newSocketPath() (string, error) {
	random := make([]byte, 4)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("generate socket name: %w", err)
	}
	return filepath.Join(where.Temp(), fmt.Sprintf("%s-%x.sock", constant.App, random)), nil
}

// buildArgs leaves video output, hwdec and profiles to the user's mpv.conf.
func buildArgs(socket, title, target string, tv bool) []string {
	osc := "no"
	if tv {
		osc = "yes"
	}

	return []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + socket,
		"--force-media-title=" + title,
		"--title=" + title,
		"--force-window=yes",
		"--keep-open=yes",
		"--pause=no",
		"--osc=" + osc,
		"--",
		target,
	}
}

// mpvHandle controls one mpv process.
type mpvHandle struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}

	// mu serializes IPC commands
	mu sync.Mutex

	listener *EventListener
	pump     *pump

	stateMu sync.Mutex
	state   propertyState

	closeOnce sync.Once
}

// listen subscribes to mpv events and starts pushing folded status snapshots.
func (h *mpvHandle) listen(interval time.Duration) error {
	h.listener = NewEventListener(h.socketPath, h.observe)
	if err := h.listener.Start(); err != nil {
		return err
	}

	h.pump.start(interval, h.exited, func(time.Time) playback.Status {
		h.stateMu.Lock()
		defer h.stateMu.Unlock()
		return h.state.status()
	})
	return nil
}

func (h *mpvHandle) observe(name string, data interface{}) {
	h.stateMu.Lock()
	h.state.apply(name, data)
	h.stateMu.Unlock()
}

func (h *mpvHandle) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-h.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", h.socketPath)
		if err == nil {
			_ = conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", h.socketPath, socketWaitRetries)
}

// Play resumes playback. At the end of the media it seeks back to the start first.
func (h *mpvHandle) Play() error {
	h.stateMu.Lock()
	ended := h.state.eof
	h.stateMu.Unlock()

	if ended {
		if err := h.Seek(0); err != nil {
			return err
		}
	}
	return h.setProperty("pause", false)
}

func (h *mpvHandle) Pause() error {
	return h.setProperty("pause", true)
}

// Seek jumps to an absolute position given in milliseconds.
func (h *mpvHandle) Seek(positionMillis int64) error {
	_, err := h.sendCommand([]interface{}{"seek", float64(positionMillis) / 1000, "absolute"})
	return err
}

func (h *mpvHandle) OnStatus(callback func(playback.Status)) {
	h.pump.subscribe(callback)
}

// Done is closed when the mpv process exits, including when the user closes its window.
func (h *mpvHandle) Done() <-chan struct{} {
	return h.exited
}

// Close asks mpv to quit and kills its process group if it does not within quitTimeout.
func (h *mpvHandle) Close() error {
	h.closeOnce.Do(func() {
		if h.listener != nil {
			h.listener.Stop()
		}

		select {
		case <-h.exited:
		default:
			_, _ = h.sendCommand([]interface{}{"quit"})
		}

		if h.cmd != nil {
			select {
			case <-h.exited:
			case <-time.After(quitTimeout):
				log.Warn("mpv: quit timed out, killing")
				_ = killProcess(h.cmd)
			}
			_ = os.Remove(h.socketPath)
		}

		h.pump.shutdown()
	})
	return nil
}

func (h *mpvHandle) setProperty(property string, value interface{}) error {
	_, err := h.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// propertyState folds observed mpv properties and events into a playback status.
type propertyState struct {
	timePos        float64
	duration       float64
	paused         bool
	pausedForCache bool
	seeking        bool
	eof            bool
	loaded         bool
}

func (p *propertyState) apply(name string, data interface{}) {
	switch name {
	// both are unavailable (nil) until a file is open, so a value means media is loaded
	// even when file-loaded fired before the listener subscribed
	case "time-pos":
		if v, ok := data.(float64); ok {
			p.timePos = v
			p.loaded = true
		}
	case "duration":
		if v, ok := data.(float64); ok {
			p.duration = v
			p.loaded = true
		}
	case "pause":
		p.paused, _ = data.(bool)
	case "paused-for-cache":
		p.pausedForCache, _ = data.(bool)
	case "seeking":
		p.seeking, _ = data.(bool)
	case "eof-reached":
		// unavailable (nil) until a file is loaded
		p.eof, _ = data.(bool)
	case "file-loaded":
		p.loaded = true
		p.eof = false
	case "end-file":
		// with --keep-open an end-file only arrives when the file is gone
		p.loaded = false
	}
}

func (p *propertyState) status() playback.Status {
	return playback.Status{
		PositionMillis: int64(p.timePos * 1000),
		DurationMillis: int64(p.duration * 1000),
		IsLoaded:       p.loaded,
		IsPlaying:      p.loaded && !p.paused && !p.eof,
		IsBuffering:    !p.loaded || p.pausedForCache || p.seeking,
	}.Normalize()
}

// sanitizeMediaTarget rejects values mpv could parse as flags and schemes other than http(s).
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	return strings.TrimSpace(strings.NewReplacer(
		"\n", " ",
		"\r", " ",
		"\t", " ",
		"\x00", "",
	).Replace(title))
}
