package game

import "time"

// Cue is a fire-and-forget presentation hint keyed by event type. Sinks are
// best effort: the controller never blocks on them and ignores failures.
type Cue string

const (
	CueFlip Cue = "flip"
	CueWin  Cue = "win"
	CueLose Cue = "lose"
	CuePush Cue = "push"
)

// OutcomeEvent is emitted once per settled bet. It carries everything a
// summary display needs so the presentation layer never re-derives money
// arithmetic from player state.
type OutcomeEvent struct {
	RoundID    string
	PlayerID   int
	PlayerName string
	Outcome    Outcome
	Total      int
	Bet        float64
	Payout     float64
	Multiplier int // 2 on a threshold win, 3 on a joker, 0 otherwise
	Timestamp  time.Time
}

// OutcomeSink receives outcome events for settled bets
type OutcomeSink interface {
	HandleOutcome(OutcomeEvent)
}

// CueSink receives presentation cues (card flips, win/lose/push tones)
type CueSink interface {
	Play(Cue)
}

func (t *Table) emitOutcome(ev OutcomeEvent) {
	if t.outcomes != nil {
		t.outcomes.HandleOutcome(ev)
	}
}

func (t *Table) emitCue(c Cue) {
	if t.cues != nil {
		t.cues.Play(c)
	}
}
