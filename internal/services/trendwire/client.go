package trendwire

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"NewsRank/internal/domain/models"
	drepo "NewsRank/internal/domain/repository"

	"github.com/gorilla/websocket"
)

// Client implements TrendingStream backed by the trending-ticker WebSocket
// feed computed upstream from click activity.
type Client struct {
	apiKey         string
	websocketURL   string
	reconnectDelay time.Duration
	pingInterval   time.Duration

	conn      *websocket.Conn
	connected bool
}

// New creates a new trending-ticker stream client.
func New(apiKey, websocketURL string, reconnectDelay, pingInterval time.Duration) drepo.TrendingStream {
	return &Client{
		apiKey:         apiKey,
		websocketURL:   websocketURL,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
	}
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect(ctx context.Context) error {
	u := fmt.Sprintf("%s?token=%s", c.websocketURL, c.apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("trendwire connect: %w", err)
	}
	c.conn = conn
	c.connected = true
	log.Printf("trendwire: connected")
	return nil
}

// Subscribe subscribes to the trending channel.
func (c *Client) Subscribe(ctx context.Context) error {
	if c.conn == nil || !c.connected {
		return fmt.Errorf("trendwire not connected")
	}
	msg := map[string]string{"type": "subscribe", "channel": "trending"}
	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("subscribe trending: %w", err)
	}
	log.Printf("trendwire: subscribed trending")
	return nil
}

type twMessage struct {
	Type    string   `json:"type"`
	Tickers []string `json:"tickers"`
	At      int64    `json:"at"` // unix seconds
}

// Read streams trending snapshots and errors.
func (c *Client) Read(ctx context.Context) (<-chan *models.TrendingSnapshot, <-chan error) {
	snapshots := make(chan *models.TrendingSnapshot, 16)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.conn != nil {
					_ = c.conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop
	go func() {
		defer close(snapshots)
		defer close(errs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if c.conn == nil {
					errs <- fmt.Errorf("trendwire conn nil")
					return
				}
				_, b, err := c.conn.ReadMessage()
				if err != nil {
					errs <- fmt.Errorf("trendwire read: %w", err)
					return
				}
				var m twMessage
				if err := json.Unmarshal(b, &m); err != nil {
					// ignore non-snapshot frames
					continue
				}
				if m.Type != "trending" {
					continue
				}
				at := time.Now()
				if m.At > 0 {
					at = time.Unix(m.At, 0)
				}
				snap := &models.TrendingSnapshot{Tickers: m.Tickers, At: at}
				select {
				case snapshots <- snap:
				default:
					// drop on backpressure; the next snapshot supersedes
				}
			}
		}
	}()

	return snapshots, errs
}

// Reconnect closes and reconnects.
func (c *Client) Reconnect(ctx context.Context) error {
	_ = c.Close()
	time.Sleep(c.reconnectDelay)
	if err := c.Connect(ctx); err != nil {
		return err
	}
	return c.Subscribe(ctx)
}

// Close closes the WS connection.
func (c *Client) Close() error {
	c.connected = false
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// IsConnected indicates status.
func (c *Client) IsConnected() bool { return c.connected }
