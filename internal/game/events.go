package game

// Event is a discrete gameplay moment surfaced to collaborators (audio,
// logging). The engine only emits these; playback is someone else's job.
type Event string

const (
	EventHit         Event = "hit"
	EventMiss        Event = "miss"
	EventWin         Event = "win"
	EventLose        Event = "lose"
	EventLevelUp     Event = "level_up"
	EventAchievement Event = "achievement"
)

// EventSink receives gameplay events. Implementations must not block; the
// engine fires and forgets.
type EventSink interface {
	GameEvent(playerID int64, event Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) GameEvent(int64, Event) {}
