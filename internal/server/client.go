package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/yildizm/TrailMap/internal/logger"
	"github.com/yildizm/TrailMap/internal/mapview"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	inboxSize      = 16
	sendSize       = 256
)

// Client actions.
const (
	ActionActivate = "activate"
	ActionAdvance  = "advance"
	ActionRetreat  = "retreat"
	ActionClose    = "close"
	ActionRender   = "render"
	ActionReload   = "reload"
)

// Command is a message from a browser, or a reload pushed by the hub.
type Command struct {
	Action string `json:"action"`
	Index  int    `json:"index,omitempty"`
}

// Update is sent to the browser after every command.
type Update struct {
	Type  string            `json:"type"`
	Map   *mapview.DrawList `json:"map,omitempty"`
	SVG   string            `json:"svg,omitempty"`
	Error string            `json:"error,omitempty"`
}

// Client is one websocket session with its own view and progress.
type Client struct {
	srv  *Server
	conn *websocket.Conn
	log  *logger.Logger

	inbox chan Command
	send  chan Update
	done  chan struct{}

	view     *mapview.View
	progress int
}

func newClient(srv *Server, conn *websocket.Conn) *Client {
	return &Client{
		srv:      srv,
		conn:     conn,
		log:      srv.log,
		inbox:    make(chan Command, inboxSize),
		send:     make(chan Update, sendSize),
		done:     make(chan struct{}),
		view:     srv.newView(),
		progress: srv.InitialProgress(),
	}
}

// apply runs one command against the session state. Unknown actions and
// inert activations leave the state unchanged.
func (c *Client) apply(cmd Command) (*mapview.DrawList, string) {
	p := c.srv.Plan()
	var problem string

	switch cmd.Action {
	case ActionActivate:
		// Activation refers to the markers of the previous render.
		if !c.view.Activate(cmd.Index) {
			c.log.Debug("ignored activation of marker %d", cmd.Index)
		}
	case ActionAdvance:
		c.progress = mapview.Advance(c.progress, p.Len())
	case ActionRetreat:
		c.progress = mapview.Retreat(c.progress, p.Len())
	case ActionClose:
		c.view.Close()
	case ActionRender, ActionReload:
	default:
		problem = "unknown action: " + cmd.Action
	}

	return c.view.Render(mapview.Input{Plan: p, Progress: c.progress}), problem
}

// session owns the view. It renders once, then once per command, until the
// hub closes the inbox.
func (c *Client) session() {
	defer close(c.send)

	if !c.push(c.update(c.apply(Command{Action: ActionRender}))) {
		c.drain()
		return
	}

	for cmd := range c.inbox {
		if !c.push(c.update(c.apply(cmd))) {
			c.drain()
			return
		}
	}
}

func (c *Client) drain() {
	for range c.inbox {
	}
}

func (c *Client) update(dl *mapview.DrawList, problem string) Update {
	if problem != "" {
		return Update{Type: "error", Error: problem}
	}
	u := Update{Type: "drawlist", Map: dl}
	if svg, err := c.srv.svg.Format(dl); err == nil {
		u.SVG = string(svg)
	}
	return u
}

func (c *Client) push(u Update) bool {
	select {
	case c.send <- u:
		return true
	case <-c.done:
		return false
	}
}

// readPump decodes commands from the browser
func (c *Client) readPump() {
	defer func() {
		c.srv.hub.Unregister(c)
		if err := c.conn.Close(); err != nil {
			c.log.Debug("failed to close websocket connection: %v", err)
		}
		c.log.Info("client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.Warn("failed to set read deadline: %v", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd Command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.log.Warn("websocket read error: %v", err)
			}
			return
		}
		select {
		case c.inbox <- cmd:
		case <-c.done:
			return
		}
	}
}

// writePump sends updates and keeps the connection alive with pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.log.Debug("failed to close websocket connection in writePump: %v", err)
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.Warn("failed to set write deadline: %v", err)
			}
			if !ok {
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.Debug("write close message failed: %v", err)
				}
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				c.log.Debug("write json message failed: %v", err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.Warn("failed to set ping write deadline: %v", err)
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.Debug("ping failed: %v", err)
				return
			}
		}
	}
}
