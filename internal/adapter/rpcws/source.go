// Package rpcws streams live account writes and rooted slots from a Solana
// RPC node's WebSocket subscriptions.
package rpcws

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gorilla/websocket"

	"github.com/marko911/geyser-pulse/internal/adapter"
	"github.com/marko911/geyser-pulse/internal/host"
)

// Config holds the RPC WebSocket source configuration.
type Config struct {
	// WebSocket endpoint (e.g. wss://api.mainnet-beta.solana.com)
	Endpoint string
	// Commitment for program subscriptions (processed, confirmed, finalized)
	Commitment string
	// Programs whose owned accounts are subscribed to
	Programs []solana.PublicKey
	// Roots subscribes to rooted slots
	Roots bool
}

// Source implements adapter.Source over programSubscribe and rootSubscribe.
// RPC nodes do not expose write versions, so a local counter stands in.
type Source struct {
	cfg    Config
	logger *slog.Logger

	writeVersion uint64
}

func NewSource(cfg Config, logger *slog.Logger) (*Source, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("rpc websocket endpoint is required")
	}
	if len(cfg.Programs) == 0 && !cfg.Roots {
		return nil, errors.New("rpc websocket source has nothing to subscribe to")
	}
	if cfg.Commitment == "" {
		cfg.Commitment = "confirmed"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		cfg:    cfg,
		logger: logger.With("source", "rpcws"),
	}, nil
}

func (s *Source) Name() string {
	return "rpcws"
}

// Stream reconnects with exponential backoff until ctx is done.
func (s *Source) Stream(ctx context.Context, notifications chan<- adapter.Notification) error {
	s.logger.Info("starting rpc websocket source",
		"endpoint", s.cfg.Endpoint,
		"commitment", s.cfg.Commitment,
		"programs", len(s.cfg.Programs),
		"roots", s.cfg.Roots,
	)

	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := s.connectAndStream(ctx, notifications)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.logger.Error("websocket error, reconnecting",
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

func (s *Source) connectAndStream(ctx context.Context, notifications chan<- adapter.Notification) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsEndpoint(s.cfg.Endpoint), nil)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}
	defer conn.Close()

	// ReadMessage does not observe ctx; closing the connection unblocks it.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := s.subscribe(conn); err != nil {
		return err
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}

		n, ok := s.parse(message)
		if !ok {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case notifications <- n:
		}
	}
}

func (s *Source) subscribe(conn *websocket.Conn) error {
	id := 1
	for _, program := range s.cfg.Programs {
		req := rpcRequest{
			JSONRPC: "2.0",
			ID:      id,
			Method:  "programSubscribe",
			Params: []any{
				program.String(),
				map[string]any{"encoding": "base64", "commitment": s.cfg.Commitment},
			},
		}
		if err := conn.WriteJSON(req); err != nil {
			return fmt.Errorf("programSubscribe %s: %w", program, err)
		}
		id++
	}

	if s.cfg.Roots {
		if err := conn.WriteJSON(rpcRequest{JSONRPC: "2.0", ID: id, Method: "rootSubscribe"}); err != nil {
			return fmt.Errorf("rootSubscribe: %w", err)
		}
	}
	return nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type programNotification struct {
	Result struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value struct {
			Pubkey  solana.PublicKey `json:"pubkey"`
			Account struct {
				Data       []string         `json:"data"`
				Executable bool             `json:"executable"`
				Lamports   uint64           `json:"lamports"`
				Owner      solana.PublicKey `json:"owner"`
				RentEpoch  uint64           `json:"rentEpoch"`
			} `json:"account"`
		} `json:"value"`
	} `json:"result"`
}

type rootNotification struct {
	Result uint64 `json:"result"`
}

// parse converts one server message. Subscription confirmations and
// unrecognized messages report false.
func (s *Source) parse(msg []byte) (adapter.Notification, bool) {
	var base struct {
		Method string          `json:"method"`
		Params json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(msg, &base); err != nil || base.Method == "" {
		return adapter.Notification{}, false
	}

	switch base.Method {
	case "programNotification":
		var p programNotification
		if err := json.Unmarshal(base.Params, &p); err != nil {
			s.logger.Warn("malformed program notification", "error", err)
			return adapter.Notification{}, false
		}
		acct := p.Result.Value.Account
		if len(acct.Data) != 2 || acct.Data[1] != "base64" {
			s.logger.Warn("unexpected account encoding", "pubkey", p.Result.Value.Pubkey)
			return adapter.Notification{}, false
		}
		data, err := base64.StdEncoding.DecodeString(acct.Data[0])
		if err != nil {
			s.logger.Warn("malformed account data", "pubkey", p.Result.Value.Pubkey, "error", err)
			return adapter.Notification{}, false
		}

		s.writeVersion++
		key := p.Result.Value.Pubkey
		return adapter.Notification{
			Kind: adapter.KindAccount,
			Slot: p.Result.Context.Slot,
			Account: &host.ReplicaAccountInfo{
				Pubkey:       key[:],
				Lamports:     acct.Lamports,
				Owner:        acct.Owner[:],
				Executable:   acct.Executable,
				RentEpoch:    acct.RentEpoch,
				Data:         data,
				WriteVersion: s.writeVersion,
			},
		}, true

	case "rootNotification":
		var p rootNotification
		if err := json.Unmarshal(base.Params, &p); err != nil {
			s.logger.Warn("malformed root notification", "error", err)
			return adapter.Notification{}, false
		}
		return adapter.Notification{Kind: adapter.KindSlot, Slot: p.Result, Status: host.SlotRooted}, true

	default:
		return adapter.Notification{}, false
	}
}

// wsEndpoint maps http(s) URLs to their ws(s) equivalents.
func wsEndpoint(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return "wss://" + strings.TrimPrefix(endpoint, "https://")
	case strings.HasPrefix(endpoint, "http://"):
		return "ws://" + strings.TrimPrefix(endpoint, "http://")
	default:
		return endpoint
	}
}

// Ensure Source implements adapter.Source.
var _ adapter.Source = (*Source)(nil)
