package websocket

import (
	"log"
	"net/http"
	"sync"

	"safex/bot"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatTransport runs the assessment conversation over a browser websocket.
// Each connection is one conversation; its id is minted here and the session
// is dropped when the socket closes.
type ChatTransport struct {
	machine  *bot.Machine
	sessions *bot.SessionStore
}

func NewChatTransport(machine *bot.Machine, sessions *bot.SessionStore) *ChatTransport {
	return &ChatTransport{machine: machine, sessions: sessions}
}

type inboundMessage struct {
	Text  string `json:"text"`
	Photo string `json:"photo,omitempty"`
}

type outboundMessage struct {
	Text          string     `json:"text"`
	Options       [][]string `json:"options,omitempty"`
	RemoveOptions bool       `json:"removeOptions,omitempty"`
}

// Handler upgrades the connection and pumps messages through the machine.
func (t *ChatTransport) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	defer t.sessions.Delete(id)

	var writeMu sync.Mutex
	send := func(replies []bot.Outgoing) {
		writeMu.Lock()
		defer writeMu.Unlock()
		for _, r := range replies {
			out := outboundMessage{Text: r.Text, Options: r.Keyboard, RemoveOptions: r.RemoveKeyboard}
			if err := conn.WriteJSON(out); err != nil {
				log.Printf("websocket: write failed for %s: %v", id, err)
				return
			}
		}
	}

	s, _ := t.sessions.GetOrCreate(id)

	s.Mu.Lock()
	replies := t.machine.Start(s)
	s.Mu.Unlock()
	send(replies)

	for {
		var in inboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket: read failed for %s: %v", id, err)
			}
			return
		}

		s.Mu.Lock()
		replies := t.machine.Handle(c.Request.Context(), s, bot.Incoming{Text: in.Text, PhotoID: in.Photo})
		s.Mu.Unlock()
		send(replies)
	}
}
