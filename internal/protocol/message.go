// Package protocol defines the JSON messages exchanged with the round engine.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the payload carried by a Message
type MessageType string

const (
	// Bot to engine
	TypeHello   MessageType = "hello"
	TypeActions MessageType = "actions"

	// Engine to bot
	TypeRoundStart    MessageType = "round_start"
	TypeActionRequest MessageType = "action_request"
	TypeRoundOver     MessageType = "round_over"
	TypeGameOver      MessageType = "game_over"

	// Either direction
	TypeError MessageType = "error"
)

// Message is the envelope for every websocket frame
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Decode unmarshals the payload into v
func (m *Message) Decode(v any) error {
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decode %s: %w", m.Type, err)
	}
	return nil
}

// Hello introduces the bot after connecting
type Hello struct {
	Name  string `json:"name"`
	BotID string `json:"bot_id"`
}

// RoundStart deals the bot its six cards
type RoundStart struct {
	Round     int      `json:"round"`
	Cards     []string `json:"cards"`
	Bankroll  int      `json:"bankroll"`
	GameClock float64  `json:"game_clock"` // seconds left for the whole game
}

// BoardState is the betting context of one board
type BoardState struct {
	LegalActions []string `json:"legal_actions"`
	MyPip        int      `json:"my_pip"`
	OppPip       int      `json:"opp_pip"`
	Pot          int      `json:"pot"`
	MinRaise     int      `json:"min_raise"`
	MaxRaise     int      `json:"max_raise"`
	Terminal     bool     `json:"terminal"`
	Cards        []string `json:"cards,omitempty"`
}

// ActionRequest asks for one action per board
type ActionRequest struct {
	Round         int          `json:"round"`
	Seq           int          `json:"seq"`
	Street        int          `json:"street"`
	Boards        []BoardState `json:"boards"`
	Stack         int          `json:"stack"`
	OppStack      int          `json:"opp_stack"`
	NetRaiseBound int          `json:"net_raise_bound"`
	Bankroll      int          `json:"bankroll"`
	GameClock     float64      `json:"game_clock"`
}

// Action is a single board's answer
type Action struct {
	Type   string   `json:"type"`
	Amount int      `json:"amount,omitempty"`
	Cards  []string `json:"cards,omitempty"`
}

// Actions answers an ActionRequest
type Actions struct {
	Round   int      `json:"round"`
	Seq     int      `json:"seq"`
	Actions []Action `json:"actions"`
}

// RoundOver reports the result of a round
type RoundOver struct {
	Round    int        `json:"round"`
	Delta    int        `json:"delta"`
	Bankroll int        `json:"bankroll"`
	OppHoles [][]string `json:"opp_holes,omitempty"` // revealed at showdown
}

// GameOver ends the session
type GameOver struct {
	Bankroll int    `json:"bankroll"`
	Reason   string `json:"reason,omitempty"`
}

// Error reports a failure; Round and Seq identify the request when known
type Error struct {
	Round   int    `json:"round,omitempty"`
	Seq     int    `json:"seq,omitempty"`
	Message string `json:"message"`
}
