// Package game implements the round controller for the 32+ betting game:
// ante collection, the per-player betting turn, settlement against the
// 32-point threshold, and house-profit accounting. The controller owns all
// authoritative state; presentation layers read snapshots and receive
// outcome events and cues, never the other way around.
package game
