package service

// Broadcaster pushes live events to a respondent's open WebSocket
// connections. The ws hub implements it; services receive it via injection
// so transport stays out of the service layer.
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}
