package events

import "time"

const TypeChatTurnCompleted = "CHAT_TURN_COMPLETED"

// TurnCompletedEvent is emitted after every dialogue turn. The usage
// consumer aggregates these into per-intent counters.
type TurnCompletedEvent struct {
	BaseEvent
}

func NewTurnCompletedEvent(sessionID, intentTag, state string, latency time.Duration) TurnCompletedEvent {
	return TurnCompletedEvent{
		BaseEvent: BaseEvent{
			Type: TypeChatTurnCompleted,
			Data: map[string]interface{}{
				"session_id": sessionID,
				"intent":     intentTag,
				"state":      state,
				"latency_ms": latency.Milliseconds(),
			},
			OccurredAt: time.Now(),
		},
	}
}
