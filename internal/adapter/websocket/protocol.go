package websocket

import "encoding/json"

type MessageType string

const (
	// MsgNotification is pushed to a client when a new notification row is
	// created for them.
	MsgNotification MessageType = "NOTIFICATION"
	// MsgMarkRead is sent by a client to flag one of its notifications read.
	MsgMarkRead MessageType = "MARK_READ"
)

type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type MarkReadPayload struct {
	NotificationID string `json:"notification_id"`
}
