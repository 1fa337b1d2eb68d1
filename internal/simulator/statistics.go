package simulator

import (
	"fmt"
	"math"
	"strings"
)

// RoundResult represents the outcome of a single simulated round
type RoundResult struct {
	Seed        int64   // RNG seed for this round (for replay)
	HouseProfit float64 // Antes plus bet deltas for the round
	Payouts     float64 // Total paid out to winners
	Wins        int
	Losses      int
	Pushes      int
}

// Statistics aggregates simulation results. Addition is commutative, so
// results may arrive in any worker order.
type Statistics struct {
	Rounds   int
	Wins     int
	Losses   int
	Pushes   int
	NetHouse float64 // Sum of per-round house profit
	Payouts  float64

	sum  float64
	sum2 float64 // Sum of squares for variance
	min  float64
	max  float64
}

// Add records one round's result
func (s *Statistics) Add(r RoundResult) {
	if s.Rounds == 0 {
		s.min = r.HouseProfit
		s.max = r.HouseProfit
	}
	s.Rounds++
	s.Wins += r.Wins
	s.Losses += r.Losses
	s.Pushes += r.Pushes
	s.NetHouse += r.HouseProfit
	s.Payouts += r.Payouts
	s.sum += r.HouseProfit
	s.sum2 += r.HouseProfit * r.HouseProfit
	s.min = math.Min(s.min, r.HouseProfit)
	s.max = math.Max(s.max, r.HouseProfit)
}

// Mean returns the arithmetic mean house profit per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.sum / float64(s.Rounds)
}

// Variance returns the sample variance of per-round house profit
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// WinRate returns the fraction of placed bets that won
func (s *Statistics) WinRate() float64 {
	bets := s.Wins + s.Losses
	if bets == 0 {
		return 0
	}
	return float64(s.Wins) / float64(bets)
}

// Summary renders a plain-text report
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds:            %d\n", s.Rounds)
	fmt.Fprintf(&b, "Bets won:          %d (%.1f%%)\n", s.Wins, s.WinRate()*100)
	fmt.Fprintf(&b, "Bets lost:         %d\n", s.Losses)
	fmt.Fprintf(&b, "Pushes:            %d\n", s.Pushes)
	fmt.Fprintf(&b, "Net house profit:  $%.2f\n", s.NetHouse)
	fmt.Fprintf(&b, "Mean per round:    $%.2f (stddev $%.2f)\n", s.Mean(), s.StdDev())
	fmt.Fprintf(&b, "Best/worst round:  $%.2f / $%.2f\n", s.max, s.min)
	return b.String()
}
