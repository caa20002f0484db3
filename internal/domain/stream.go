package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с сервисами-потребителями)
const (
	StreamGeoResolve  = "stream:geo:resolve"
	StreamGeoResolved = "stream:geo:resolved"
)

// ResolveEvent - входящее событие на разрешение географического выбора
type ResolveEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	Level     Level     `json:"level"`
	Filters   Filters   `json:"filters"`
}

// ResolvedEvent - результат разрешения
type ResolvedEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	ID        int       `json:"id"`
	Level     Level     `json:"level"`
	Found     bool      `json:"found"`
	Name      string    `json:"name,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream (поле "data" с JSON)
type StreamMessage struct {
	ID     string
	Stream string
	Data   string
}
