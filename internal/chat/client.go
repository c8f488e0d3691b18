// Package chat is a thin client for the fitlinea chat collaborator
// service, used to trigger trainer auto-messages and to read
// conversation activity for presence tracking.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
)

const (
	RoleAssistant = "assistant"
	RoleTrainer   = "trainer"
	RoleAthlete   = "athlete"
)

// Message is the last-message metadata of a conversation.
type Message struct {
	ID         string    `json:"id"`
	SenderRole string    `json:"senderRole"`
	SentAt     time.Time `json:"sentAt"`
}

// Conversation as reported by the chat service.
type Conversation struct {
	ID          string   `json:"id"`
	AthleteID   int      `json:"athleteId"`
	LastMessage *Message `json:"lastMessage,omitempty"`
}

// TriggerAutoMessageParams asks the chat service to have the trainer
// assistant send a message to the athlete.
type TriggerAutoMessageParams struct {
	AthleteID int    `json:"athleteId"`
	Reason    string `json:"reason"`
	Context   string `json:"context,omitempty"`
}

type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

func NewClient(baseURL, authToken string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		authToken:  authToken,
		httpClient: httpClient,
	}
}

// ListConversations returns all trainer conversations with their last
// message metadata.
func (c *Client) ListConversations(ctx context.Context) (_ []Conversation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chatClient.listConversations")
	defer tracing.EndSpanWithErrCheck(span, err)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/conversations", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-FIT-TOKEN", c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list conversations: unexpected status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversations response bytes: %w", err)
	}

	var conversations []Conversation
	if err := json.Unmarshal(respBytes, &conversations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversations response bytes: %w", err)
	}

	return conversations, nil
}

// TriggerAutoMessage fires an assistant auto-message for the athlete.
func (c *Client) TriggerAutoMessage(ctx context.Context, params TriggerAutoMessageParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chatClient.triggerAutoMessage")
	defer tracing.EndSpanWithErrCheck(span, err)

	paramsJson, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal auto message params: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, "POST",
		c.baseURL+"/api/messages/auto",
		bytes.NewReader(paramsJson),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FIT-TOKEN", c.authToken)
	// the chat service dedupes retried triggers on this id
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("trigger auto message: unexpected status %d", resp.StatusCode)
	}

	log.Debugf("auto message triggered for athlete %d, reason: %s", params.AthleteID, params.Reason)
	return nil
}
