package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// CommandHandler executes one bot command and returns the reply text; an
// empty reply means the handler produced its own output.
type CommandHandler func(command string) string

type pollUpdate struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
	} `json:"message"`
}

type pollResponse struct {
	OK     bool         `json:"ok"`
	Result []pollUpdate `json:"result"`
}

// StartPolling long-polls the getUpdates endpoint and dispatches slash
// commands to the handler; chatter without a leading slash never reaches the
// scanner. Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	// The long poll holds each request open for up to 30s, so this client
	// needs more headroom than the send client. The transport is shared to
	// keep the proxy configuration.
	client := &http.Client{Timeout: 40 * time.Second, Transport: t.Client.Transport}

	offset := 0
	for ctx.Err() == nil {
		updates, err := t.pollOnce(ctx, client, offset)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Printf("[WARN] telegram poll: %v", err)
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message == nil {
				continue
			}
			cmd := strings.TrimSpace(u.Message.Text)
			if !strings.HasPrefix(cmd, "/") {
				continue
			}
			log.Printf("[INFO] telegram command: %s", cmd)
			if reply := handler(cmd); reply != "" {
				if err := t.Send(ctx, reply); err != nil {
					log.Printf("[ERROR] telegram reply: %v", err)
				}
			}
		}
	}
	log.Println("[INFO] telegram polling stopped")
}

func (t *TelegramNotifier) pollOnce(ctx context.Context, client *http.Client, offset int) ([]pollUpdate, error) {
	apiURL := fmt.Sprintf("%s/bot%s/getUpdates?offset=%d&timeout=30", t.apiBase, t.BotToken, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var parsed pollResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	if !parsed.OK {
		return nil, fmt.Errorf("getUpdates rejected, body: %s", body)
	}
	return parsed.Result, nil
}
