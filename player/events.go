package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/movieflix-cli/movieflix/log"
)

// EventCallback receives property changes by property name and other events by event name with nil data.
type EventCallback func(name string, data interface{})

// ObservedProperties are the mpv properties folded into playback status.
var ObservedProperties = []string{
	"time-pos",
	"duration",
	"pause",
	"paused-for-cache",
	"seeking",
	"eof-reached",
}

// EventListener holds a persistent IPC connection and forwards mpv events from it.
// mpv delivers property changes only to the connection that asked to observe them.
type EventListener struct {
	socketPath string
	callback   EventCallback

	mu        sync.Mutex
	conn      net.Conn
	done      chan struct{}
	listening bool
}

func NewEventListener(socketPath string, callback EventCallback) *EventListener {
	return &EventListener{socketPath: socketPath, callback: callback}
}

// Start connects, registers the observers and starts the read loop.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range ObservedProperties {
		payload, err := json.Marshal(ipcCommand{Command: []interface{}{"observe_property", i + 1, name}})
		if err != nil {
			_ = conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			_ = conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.done = make(chan struct{})
	el.listening = true
	go el.readLoop(conn, el.done)

	log.Debugf("mpv: event listener on %s", el.socketPath)
	return nil
}

// Stop closes the connection and waits for the read loop to exit.
func (el *EventListener) Stop() {
	el.mu.Lock()
	if !el.listening {
		el.mu.Unlock()
		return
	}
	el.listening = false
	conn, done := el.conn, el.done
	el.mu.Unlock()

	_ = conn.Close()
	<-done
}

func (el *EventListener) readLoop(conn net.Conn, done chan struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		el.dispatch(scanner.Bytes())
	}

	el.mu.Lock()
	stopped := !el.listening
	el.mu.Unlock()
	if err := scanner.Err(); err != nil && !stopped {
		log.Warnf("mpv: event listener read: %v", err)
	}
}

type ipcEvent struct {
	Event string      `json:"event"`
	Name  string      `json:"name"`
	Data  interface{} `json:"data"`
}

// dispatch forwards one event line. Command replies and unparseable lines are dropped.
func (el *EventListener) dispatch(line []byte) {
	var event ipcEvent
	if err := json.Unmarshal(line, &event); err != nil || event.Event == "" || el.callback == nil {
		return
	}

	if event.Event == "property-change" {
		if event.Name != "" {
			el.callback(event.Name, event.Data)
		}
		return
	}

	el.callback(event.Event, nil)
}
