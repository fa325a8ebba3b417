package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bithunter/bithunter-go/core/gateway"
)

// ErrDialFailed is returned when the event stream cannot be established.
var ErrDialFailed = errors.New("failed to connect to event stream")

// Config holds event stream configuration.
type Config struct {
	// URL is the websocket endpoint, ws:// or wss://.
	URL string `env:"BITHUNTER_WS_URL" envDefault:"ws://localhost:8000/ws"`

	// HandshakeTimeout bounds the opening handshake.
	HandshakeTimeout time.Duration `env:"BITHUNTER_WS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
}

// Event is a single message from the stream. Payload interpretation belongs
// to the feature consuming the event type.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Conn is an open event stream connection.
type Conn struct {
	ws *websocket.Conn
}

// Dial opens the event stream. The current bearer credential from source is
// attached to the handshake when the session is authenticated.
func Dial(ctx context.Context, cfg Config, source gateway.Source) (*Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: cfg.HandshakeTimeout,
		Proxy:            http.ProxyFromEnvironment,
	}

	header := http.Header{}
	if source != nil {
		if token, ok := source.BearerToken(); ok {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	ws, resp, err := dialer.DialContext(ctx, cfg.URL, header)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, errors.Join(ErrDialFailed, err)
	}
	return &Conn{ws: ws}, nil
}

// Next blocks until the next event arrives or the connection fails.
func (c *Conn) Next() (Event, error) {
	var ev Event
	if err := c.ws.ReadJSON(&ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// Send writes an event to the stream.
func (c *Conn) Send(ev Event) error {
	return c.ws.WriteJSON(ev)
}

// Close sends a close frame and tears the connection down.
func (c *Conn) Close() error {
	deadline := time.Now().Add(time.Second)
	_ = c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	return c.ws.Close()
}
