// Package client connects a player to the round engine over a websocket.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/threeboard/internal/decide"
	"github.com/lox/threeboard/internal/deck"
	"github.com/lox/threeboard/internal/protocol"
	"github.com/lox/threeboard/internal/statistics"
)

// Player handles the round engine's callbacks
type Player interface {
	HandleNewRound(number int, cards []deck.Card) (deck.Allocation, error)
	GetActions(req decide.Request) (decide.Decision, error)
	HandleRoundOver(number int, delta int)
	AbortRound(cause error)
}

// Options configure a Client
type Options struct {
	ServerURL string
	Name      string
	BotID     string        // generated when empty
	Timeout   time.Duration // decisions slower than this are logged
	Clock     quartz.Clock  // defaults to the real clock
}

// Stats counts what happened during a session
type Stats struct {
	Rounds        int
	Requests      int
	Errors        int // error replies sent to the engine
	SlowDecisions int
	Bankroll      int
	Results       statistics.Statistics
}

// Client plays one session against the engine. Messages are handled one at
// a time so the player is never called concurrently.
type Client struct {
	opts   Options
	player Player
	clock  quartz.Clock
	conn   *websocket.Conn
	stats  Stats
	logger *log.Logger
}

// New creates a client for player
func New(player Player, logger *log.Logger, opts Options) *Client {
	if opts.BotID == "" {
		opts.BotID = uuid.NewString()
	}
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Client{
		opts:   opts,
		player: player,
		clock:  clock,
		logger: logger.WithPrefix("client").With("bot_id", opts.BotID),
	}
}

// BotID returns the identifier sent to the engine
func (c *Client) BotID() string {
	return c.opts.BotID
}

// Stats returns the session counters
func (c *Client) Stats() Stats {
	return c.stats
}

// Connect dials the engine and introduces the bot
func (c *Client) Connect(ctx context.Context) error {
	u, err := url.Parse(c.opts.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	c.logger.Info("Connecting to engine", "url", u.String())

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	c.conn = conn

	if err := c.send(protocol.TypeHello, protocol.Hello{Name: c.opts.Name, BotID: c.opts.BotID}); err != nil {
		_ = conn.Close()
		return err
	}

	c.logger.Info("Connected", "name", c.opts.Name)
	return nil
}

// Run serves engine messages until the game ends, the engine hangs up or
// ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	if c.conn == nil {
		return errors.New("not connected")
	}
	defer c.conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.Close()
	})
	defer stop()

	for {
		var msg protocol.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info("Engine closed the connection")
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		done, err := c.handle(&msg)
		if err != nil {
			return err
		}
		if done {
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return nil
		}
	}
}

// handle dispatches one message. It returns done once the game is over and
// an error only when the connection is unusable.
func (c *Client) handle(msg *protocol.Message) (bool, error) {
	switch msg.Type {
	case protocol.TypeRoundStart:
		var data protocol.RoundStart
		if err := msg.Decode(&data); err != nil {
			return false, c.sendError(0, 0, err)
		}
		return false, c.handleRoundStart(data)

	case protocol.TypeActionRequest:
		var data protocol.ActionRequest
		if err := msg.Decode(&data); err != nil {
			return false, c.sendError(0, 0, err)
		}
		return false, c.handleActionRequest(data)

	case protocol.TypeRoundOver:
		var data protocol.RoundOver
		if err := msg.Decode(&data); err != nil {
			// the round is over either way
			c.player.AbortRound(err)
			return false, c.sendError(0, 0, err)
		}
		c.stats.Rounds++
		c.stats.Bankroll = data.Bankroll
		c.stats.Results.Add(statistics.RoundResult{Delta: data.Delta, Showdown: len(data.OppHoles) > 0})
		c.player.HandleRoundOver(data.Round, data.Delta)
		return false, nil

	case protocol.TypeGameOver:
		var data protocol.GameOver
		if err := msg.Decode(&data); err != nil {
			c.logger.Warn("Malformed game over", "error", err)
		}
		c.stats.Bankroll = data.Bankroll
		c.logger.Info("Game over",
			"bankroll", data.Bankroll,
			"reason", data.Reason,
			"rounds", c.stats.Rounds,
			"slow_decisions", c.stats.SlowDecisions)
		c.logResults()
		return true, nil

	case protocol.TypeError:
		var data protocol.Error
		if err := msg.Decode(&data); err != nil {
			c.logger.Warn("Malformed error message", "error", err)
			return false, nil
		}
		c.logger.Warn("Engine reported error", "round", data.Round, "seq", data.Seq, "message", data.Message)
		return false, nil

	default:
		c.logger.Debug("Ignoring message", "type", msg.Type)
		return false, nil
	}
}

// logResults summarises the per-round deltas and checks the ledger
func (c *Client) logResults() {
	res := &c.stats.Results
	if res.Rounds == 0 {
		return
	}
	lo, hi := res.ConfidenceInterval95()
	c.logger.Info("Results",
		"win_rate", res.WinRate(),
		"mean", res.Mean(),
		"stddev", res.StdDev(),
		"variance", res.Variance(),
		"ci95_low", lo,
		"ci95_high", hi,
		"p10", res.Percentile(0.1),
		"median", res.Median(),
		"p90", res.Percentile(0.9))
	c.logger.Info("Result breakdown",
		"showdown_chips", res.ShowdownChips,
		"non_showdown_chips", res.NonShowdownChips,
		"showdown_wins", res.ShowdownWins,
		"non_showdown_wins", res.NonShowdownWins,
		"biggest_win", res.BiggestWin,
		"biggest_loss", res.BiggestLoss,
		"big_rounds", res.BigRounds,
		"big_round_chips", res.BigChips)
	if err := res.Validate(); err != nil {
		c.logger.Warn("Result ledger inconsistent", "error", err)
	}
}

func (c *Client) handleRoundStart(data protocol.RoundStart) error {
	c.logger.Debug("Round start", "round", data.Round, "bankroll", data.Bankroll, "game_clock", data.GameClock)

	cards, err := data.ParseCards()
	if err != nil {
		return c.sendError(data.Round, 0, err)
	}
	if _, err := c.player.HandleNewRound(data.Round, cards); err != nil {
		return c.sendError(data.Round, 0, err)
	}
	return nil
}

func (c *Client) handleActionRequest(data protocol.ActionRequest) error {
	start := c.clock.Now()
	c.stats.Requests++

	req, err := data.Request()
	if err != nil {
		return c.sendError(data.Round, data.Seq, err)
	}

	d, err := c.player.GetActions(req)
	if err != nil {
		return c.sendError(data.Round, data.Seq, err)
	}

	elapsed := c.clock.Since(start)
	if c.opts.Timeout > 0 && elapsed > c.opts.Timeout {
		c.stats.SlowDecisions++
		c.logger.Warn("Slow decision", "round", data.Round, "seq", data.Seq, "elapsed", elapsed, "timeout", c.opts.Timeout)
	}
	c.logger.Debug("Answering", "round", data.Round, "seq", data.Seq, "elapsed", elapsed, "game_clock", data.GameClock)

	return c.send(protocol.TypeActions, protocol.NewActions(data.Round, data.Seq, d.Actions))
}

// sendError tells the engine a request could not be answered. Only a
// failure to send is returned.
func (c *Client) sendError(round, seq int, cause error) error {
	c.stats.Errors++
	c.logger.Error("Cannot answer engine", "round", round, "seq", seq, "error", cause)
	return c.send(protocol.TypeError, protocol.Error{Round: round, Seq: seq, Message: cause.Error()})
}

func (c *Client) send(t protocol.MessageType, data any) error {
	msg, err := protocol.NewMessage(t, data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t, err)
	}
	// socket deadlines are wall-clock, not the injected clock
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write %s: %w", t, err)
	}
	return nil
}
