package game

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/thirtytwo/cards"
	"github.com/lox/thirtytwo/internal/randutil"
)

const (
	// WinningTotal is the score a 4-card hand must reach to pay out.
	WinningTotal = 32

	// HandSize is the number of cards dealt to each player.
	HandSize = 4

	// MaxPlayers is the most seats a round supports. Five players of four
	// cards always fit in a 52-card deck.
	MaxPlayers = 5

	// AnteRate is the fraction of the max bet collected as ante.
	AnteRate = 0.10

	winMultiplier   = 2
	jokerMultiplier = 3
)

// TableConfig holds the inputs collected before a round starts
type TableConfig struct {
	MaxBet   float64
	Bankroll float64
	Ante     float64  // 0 derives the ante as 10% of MaxBet
	Seed     *int64   // nil shuffles from system entropy
	Jokers   bool     // 54-card variant: any joker pays 3x
	Names    []string // 1..MaxPlayers display names, blanks defaulted
}

// TableOption configures a Table during creation
type TableOption func(*Table)

// WithOutcomeSink registers a sink for per-settlement outcome events
func WithOutcomeSink(s OutcomeSink) TableOption {
	return func(t *Table) { t.outcomes = s }
}

// WithCueSink registers a sink for presentation cues
func WithCueSink(s CueSink) TableOption {
	return func(t *Table) { t.cues = s }
}

// WithRand overrides the random source, for tests that need a scripted deck
func WithRand(rng *rand.Rand) TableOption {
	return func(t *Table) { t.rng = rng }
}

// Table is the round controller. It owns the authoritative game state;
// exactly one player is awaiting a bet at any time during an active round,
// and it is always Players[ActiveIndex].
type Table struct {
	RoundID     string
	Players     []*Player
	MaxBet      float64
	Ante        float64
	ActiveIndex int
	RoundActive bool

	// HouseRoundProfit tracks antes collected plus bet settlement deltas
	// for the current round; HouseTotalProfit accumulates across rounds.
	// A push contributes nothing beyond the ante already credited.
	HouseRoundProfit float64
	HouseTotalProfit float64

	cfg      TableConfig
	names    []string
	rng      *rand.Rand
	logger   *log.Logger
	outcomes OutcomeSink
	cues     CueSink
}

// NewTable validates the table inputs and builds a controller ready for
// StartRound. It fails with ErrInvalidInput on a non-positive bankroll or
// max bet, or a player count outside 1..MaxPlayers.
func NewTable(cfg TableConfig, logger *log.Logger, opts ...TableOption) (*Table, error) {
	if logger == nil {
		logger = log.Default()
	}
	if !validAmount(cfg.Bankroll) || cfg.Bankroll <= 0 {
		return nil, fmt.Errorf("%w: bankroll must be a positive amount, got %v", ErrInvalidInput, cfg.Bankroll)
	}
	if !validAmount(cfg.MaxBet) || cfg.MaxBet <= 0 {
		return nil, fmt.Errorf("%w: max bet must be a positive amount, got %v", ErrInvalidInput, cfg.MaxBet)
	}

	ante := cfg.Ante
	if ante == 0 {
		ante = roundCents(cfg.MaxBet * AnteRate)
	}
	if !validAmount(ante) || ante <= 0 {
		return nil, fmt.Errorf("%w: ante must be a positive amount, got %v", ErrInvalidInput, cfg.Ante)
	}

	names := defaultNames(cfg.Names)
	if len(names) == 0 || len(names) > MaxPlayers {
		return nil, fmt.Errorf("%w: between 1 and %d players required, got %d", ErrInvalidInput, MaxPlayers, len(names))
	}

	t := &Table{
		MaxBet:      cfg.MaxBet,
		Ante:        ante,
		ActiveIndex: -1,
		cfg:         cfg,
		names:       names,
		logger:      logger.WithPrefix("game"),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.rng == nil {
		if cfg.Seed != nil {
			t.rng = randutil.New(*cfg.Seed)
		} else {
			t.rng = randutil.NewSystem()
		}
	}

	return t, nil
}

// defaultNames trims the provided names and fills blanks with positional
// defaults ("Player 1", "Player 2", ...)
func defaultNames(names []string) []string {
	out := make([]string, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		out = append(out, name)
	}
	return out
}

// StartRound deals a fresh shuffled deck, collects antes, and points the
// turn at the first eligible player. Players who cannot cover the ante are
// settled immediately and never get a turn; if that is everyone, the round
// does not start and ErrNoEligiblePlayers is returned. Starting over an
// active round is rejected: callers end the round first.
func (t *Table) StartRound() error {
	if t.RoundActive {
		return fmt.Errorf("%w: round %s has unsettled players", ErrRoundInProgress, t.RoundID)
	}

	opts := []cards.DeckOption{}
	if t.cfg.Jokers {
		opts = append(opts, cards.WithJokers())
	}
	deck := cards.NewDeck(t.rng, opts...)

	players := make([]*Player, len(t.names))
	for i, name := range t.names {
		players[i] = &Player{
			ID:       i,
			Name:     name,
			Bankroll: t.cfg.Bankroll,
			Hand:     deck.Deal(HandSize),
		}
	}

	t.RoundID = uuid.NewString()
	t.HouseRoundProfit = 0

	for _, p := range players {
		if p.Bankroll < t.Ante {
			p.Settled = true
			p.Outcome = OutcomeNoAnte
			t.logger.Info("player cannot cover ante", "player", p.Name, "bankroll", p.Bankroll, "ante", t.Ante)
			continue
		}
		p.Bankroll -= t.Ante
		p.AntePaid = t.Ante
		t.HouseRoundProfit += t.Ante
		t.HouseTotalProfit += t.Ante
	}

	active := -1
	for _, p := range players {
		if !p.Settled {
			active = p.ID
			break
		}
	}
	if active == -1 {
		t.Players = players
		t.ActiveIndex = -1
		t.RoundActive = false
		return fmt.Errorf("%w: nobody can cover the %s ante", ErrNoEligiblePlayers, FormatMoney(t.Ante))
	}

	t.Players = players
	t.ActiveIndex = active
	t.RoundActive = true
	players[active].AwaitingBet = true

	t.logger.Info("round started",
		"round", t.RoundID,
		"players", len(players),
		"ante", t.Ante,
		"max_bet", t.MaxBet,
		"jokers", t.cfg.Jokers)
	t.emitCue(CueFlip)
	return nil
}

// PlaceBet settles the active player's turn. Amount 0 is a push: the player
// keeps their bankroll (minus the ante) and no score is computed. A positive
// bet is deducted immediately, the hand is scored, and a total of 32 or
// better pays 2x the bet (any joker pays 3x in the joker variant). The turn
// then advances to the next unsettled player.
func (t *Table) PlaceBet(playerID int, amount float64) (*OutcomeEvent, error) {
	if !t.RoundActive || playerID != t.ActiveIndex {
		return nil, fmt.Errorf("%w: player %d (active index %d)", ErrNotYourTurn, playerID, t.ActiveIndex)
	}
	p := t.Players[playerID]
	if !p.AwaitingBet {
		return nil, fmt.Errorf("%w: player %d already settled", ErrNotAwaitingBet, playerID)
	}
	if !validAmount(amount) || amount < 0 {
		return nil, fmt.Errorf("%w: %v is not a valid amount", ErrInvalidBet, amount)
	}
	if amount > t.MaxBet {
		return nil, fmt.Errorf("%w: %s exceeds the %s max bet", ErrInvalidBet, FormatMoney(amount), FormatMoney(t.MaxBet))
	}
	if amount > p.Bankroll {
		return nil, fmt.Errorf("%w: %s exceeds %s's %s bankroll", ErrInvalidBet, FormatMoney(amount), p.Name, FormatMoney(p.Bankroll))
	}

	if amount == 0 {
		p.Outcome = OutcomePush
		t.settle(p)
		t.logger.Info("push", "player", p.Name)
		ev := t.outcomeEvent(p)
		t.emitOutcome(ev)
		t.emitCue(CuePush)
		t.advanceTurn()
		return &ev, nil
	}

	p.Bankroll -= amount
	p.Bet = amount
	p.Total = cards.HandTotal(p.Hand)
	p.RevealAll = true

	multiplier := 0
	switch {
	case t.cfg.Jokers && cards.HasJoker(p.Hand):
		multiplier = jokerMultiplier
		p.Outcome = OutcomeWin
	case p.Total >= WinningTotal:
		multiplier = winMultiplier
		p.Outcome = OutcomeWin
	default:
		p.Outcome = OutcomeLose
	}

	if multiplier > 0 {
		p.Payout = amount * float64(multiplier)
		p.Bankroll += p.Payout
	}

	// House either keeps the full bet on a loss or pays out bet net on a
	// win: delta + payout == bet always holds.
	delta := amount - p.Payout
	t.HouseRoundProfit += delta
	t.HouseTotalProfit += delta

	t.settle(p)
	t.logger.Info("bet settled",
		"player", p.Name,
		"bet", amount,
		"total", p.Total,
		"outcome", p.Outcome,
		"payout", p.Payout,
		"bankroll", p.Bankroll)

	ev := t.outcomeEvent(p)
	ev.Multiplier = multiplier
	t.emitOutcome(ev)
	if p.Outcome == OutcomeWin {
		t.emitCue(CueWin)
	} else {
		t.emitCue(CueLose)
	}
	t.advanceTurn()
	return &ev, nil
}

func (t *Table) settle(p *Player) {
	p.Settled = true
	p.AwaitingBet = false
}

func (t *Table) outcomeEvent(p *Player) OutcomeEvent {
	return OutcomeEvent{
		RoundID:    t.RoundID,
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Outcome:    p.Outcome,
		Total:      p.Total,
		Bet:        p.Bet,
		Payout:     p.Payout,
		Timestamp:  time.Now(),
	}
}

// advanceTurn scans forward for the next unsettled player. When none remain
// the round completes.
func (t *Table) advanceTurn() {
	for i := t.ActiveIndex + 1; i < len(t.Players); i++ {
		if !t.Players[i].Settled {
			t.ActiveIndex = i
			t.Players[i].AwaitingBet = true
			t.emitCue(CueFlip)
			return
		}
	}
	t.ActiveIndex = -1
	t.RoundActive = false
	t.logger.Info("round complete", "round", t.RoundID, "house_round_profit", t.HouseRoundProfit)
}

// EndRound terminates the round early. Remaining players are force-settled
// with no payout logic applied; their antes stay with the house.
func (t *Table) EndRound() {
	for _, p := range t.Players {
		if !p.Settled {
			p.Settled = true
			p.AwaitingBet = false
		}
	}
	if t.RoundActive {
		t.logger.Info("round ended early", "round", t.RoundID)
	}
	t.ActiveIndex = -1
	t.RoundActive = false
}

// ResetBankrolls sets every player's bankroll to the supplied value and
// zeroes both house-profit counters. Hands and turn state are untouched.
func (t *Table) ResetBankrolls(amount float64) error {
	if !validAmount(amount) || amount < 0 {
		return fmt.Errorf("%w: bankroll must be a non-negative amount, got %v", ErrInvalidInput, amount)
	}
	for _, p := range t.Players {
		p.Bankroll = amount
	}
	t.HouseRoundProfit = 0
	t.HouseTotalProfit = 0
	return nil
}

// ActivePlayer returns the player whose turn it is, or nil between rounds
func (t *Table) ActivePlayer() *Player {
	if t.ActiveIndex < 0 || t.ActiveIndex >= len(t.Players) {
		return nil
	}
	return t.Players[t.ActiveIndex]
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundCents rounds to two decimal places, used when deriving the ante
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney renders an amount as dollars and cents
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
