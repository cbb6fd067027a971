package rpcws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marko911/geyser-pulse/internal/adapter"
	"github.com/marko911/geyser-pulse/internal/host"
)

var tokenProgram = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

const programMsg = `{"jsonrpc":"2.0","method":"programNotification","params":{"result":{"context":{"slot":5208469},"value":{"pubkey":"So11111111111111111111111111111111111111112","account":{"data":["AQID","base64"],"executable":false,"lamports":33594,"owner":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA","rentEpoch":18446744073709551615,"space":3}}},"subscription":24040}}`

const rootMsg = `{"jsonrpc":"2.0","method":"rootNotification","params":{"result":42,"subscription":0}}`

func newSource(t *testing.T, endpoint string) *Source {
	t.Helper()
	src, err := NewSource(Config{
		Endpoint: endpoint,
		Programs: []solana.PublicKey{tokenProgram},
		Roots:    true,
	}, nil)
	require.NoError(t, err)
	return src
}

func TestNewSource_Validation(t *testing.T) {
	_, err := NewSource(Config{}, nil)
	require.Error(t, err)

	_, err = NewSource(Config{Endpoint: "ws://localhost:8900"}, nil)
	require.Error(t, err)

	src, err := NewSource(Config{Endpoint: "ws://localhost:8900", Roots: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", src.cfg.Commitment)
	assert.Equal(t, "rpcws", src.Name())
}

func TestParse(t *testing.T) {
	src := newSource(t, "ws://unused")

	n, ok := src.parse([]byte(programMsg))
	require.True(t, ok)
	assert.Equal(t, adapter.KindAccount, n.Kind)
	assert.Equal(t, uint64(5208469), n.Slot)

	acct := n.Account.Account()
	assert.Equal(t, solana.SolMint.Bytes(), acct.Pubkey)
	assert.Equal(t, tokenProgram.Bytes(), acct.Owner)
	assert.Equal(t, []byte{1, 2, 3}, acct.Data)
	assert.Equal(t, uint64(33594), acct.Lamports)
	assert.Equal(t, uint64(18446744073709551615), acct.RentEpoch)
	assert.Equal(t, uint64(1), acct.WriteVersion)

	n, ok = src.parse([]byte(rootMsg))
	require.True(t, ok)
	assert.Equal(t, adapter.KindSlot, n.Kind)
	assert.Equal(t, host.SlotRooted, n.Status)
	assert.Equal(t, uint64(42), n.Slot)

	for _, msg := range []string{
		`{"jsonrpc":"2.0","result":24040,"id":1}`,
		`not json`,
		`{"jsonrpc":"2.0","method":"slotNotification","params":{"result":{"slot":1}}}`,
		`{"jsonrpc":"2.0","method":"programNotification","params":{"result":{"value":{"account":{"data":["AQID","base58"]}}}}}`,
	} {
		_, ok := src.parse([]byte(msg))
		assert.False(t, ok, msg)
	}
}

func TestWSEndpoint(t *testing.T) {
	assert.Equal(t, "wss://api.mainnet-beta.solana.com", wsEndpoint("https://api.mainnet-beta.solana.com"))
	assert.Equal(t, "ws://localhost:8900", wsEndpoint("http://localhost:8900"))
	assert.Equal(t, "ws://localhost:8900", wsEndpoint("ws://localhost:8900"))
}

func TestStream(t *testing.T) {
	methods := make(chan string, 4)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for range 2 {
			var req rpcRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			methods <- req.Method
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","result":1,"id":`+jsonInt(req.ID)+`}`))
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(programMsg))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(rootMsg))

		// Hold the connection open until the client goes away.
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	src := newSource(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out := make(chan adapter.Notification, 4)
	errCh := make(chan error, 1)
	go func() { errCh <- src.Stream(ctx, out) }()

	first := <-out
	second := <-out
	assert.Equal(t, adapter.KindAccount, first.Kind)
	assert.Equal(t, adapter.KindSlot, second.Kind)
	assert.Equal(t, "programSubscribe", <-methods)
	assert.Equal(t, "rootSubscribe", <-methods)

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not stop after cancel")
	}
}

func jsonInt(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}
