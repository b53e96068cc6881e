package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

type ipcCommand struct {
	Command   []interface{} `json:"command"`
	RequestID int64         `json:"request_id"`
}

type ipcResponse struct {
	Data      interface{} `json:"data"`
	Error     string      `json:"error"`
	RequestID int64       `json:"request_id"`
	Event     string      `json:"event"`
}

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = 1 * time.Second
)

var requestIDs atomic.Int64

// sendCommand runs one JSON-IPC command, retrying transient failures.
func (h *mpvHandle) sendCommand(command []interface{}) (interface{}, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		result, err := doSendCommand(h.socketPath, command)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command %v failed after %d attempts: %w", command[0], maxRetries, lastErr)
}

// doSendCommand writes one command on a fresh connection and waits for the reply carrying its request id.
// Event lines interleaved on the connection are skipped.
func doSendCommand(socketPath string, command []interface{}) (interface{}, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	id := requestIDs.Add(1)
	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	if _, err = conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}

		if resp.Event != "" || resp.RequestID != id {
			continue
		}

		if resp.Error != "" && resp.Error != "success" {
			return nil, fmt.Errorf("mpv error: %s", resp.Error)
		}
		return resp.Data, nil
	}
}
