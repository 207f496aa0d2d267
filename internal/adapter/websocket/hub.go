package websocket

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

type NotificationLogic interface {
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error
}

// directMessage targets every connection a single user currently holds.
type directMessage struct {
	userID  string
	payload []byte
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	direct     chan directMessage
	register   chan *Client
	unregister chan *Client
	svc        NotificationLogic
}

func NewHub(svc NotificationLogic) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		direct:     make(chan directMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		svc:        svc,
	}
}

func (h *Hub) HandleMessage(client *Client, message []byte) {
	var env Envelope
	if err := json.Unmarshal(message, &env); err != nil {
		log.Printf("invalid json from user %s: %v", client.userID, err)
		return
	}

	switch env.Type {
	case MsgMarkRead:
		var payload MarkReadPayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return
		}

		userUUID, err := uuid.Parse(client.userID)
		if err != nil {
			return
		}
		notificationUUID, err := uuid.Parse(payload.NotificationID)
		if err != nil {
			return
		}

		if err := h.svc.MarkRead(context.Background(), userUUID, notificationUUID); err != nil {
			log.Printf("failed to mark notification read for user %s: %v", client.userID, err)
		}
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		case msg := <-h.direct:
			for client := range h.clients {
				if client.userID == msg.userID {
					select {
					case client.send <- msg.payload:
					default:
					}
				}
			}
		}
	}
}

// SendToUser delivers a message to every connection the user currently holds.
// Missing users are not an error; the notification row is still persisted.
// The send is handed to Run's loop, which is the only goroutine that touches
// the client map.
func (h *Hub) SendToUser(userID string, message []byte) {
	h.direct <- directMessage{userID: userID, payload: message}
}
