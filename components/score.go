package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ScoreData is the run's score (singleton)
type ScoreData struct {
	Value int
}

var Score = donburi.NewComponentType[ScoreData]()

// ScoreUpEvent is a pending "+1" popup
type ScoreUpEvent struct {
	Position mgl64.Vec3
}

// ScoreUpQueueData holds popups waiting for the effect system (singleton)
type ScoreUpQueueData struct {
	Events []ScoreUpEvent
}

var ScoreUpQueue = donburi.NewComponentType[ScoreUpQueueData]()

// Push appends an event
func (q *ScoreUpQueueData) Push(ev ScoreUpEvent) {
	q.Events = append(q.Events, ev)
}

// Drain returns the pending events in order and empties the queue
func (q *ScoreUpQueueData) Drain() []ScoreUpEvent {
	if len(q.Events) == 0 {
		return nil
	}
	out := make([]ScoreUpEvent, len(q.Events))
	copy(out, q.Events)
	q.Events = q.Events[:0]
	return out
}
