// Package board provides position arithmetic and space lookup for the two
// game boards: the rat-race loop and the fast-track loop. Both boards are
// closed loops of fixed length; all functions here are pure table lookups.
package board

import "fmt"

// SpaceType identifies the kind of a rat-race board space.
type SpaceType int

const (
	SpaceDeal SpaceType = iota
	SpaceDoodad
	SpaceMarket
	SpacePayDay
	SpaceCharity
	SpaceDownsized
	SpaceBaby
)

var spaceNames = map[SpaceType]string{
	SpaceDeal:      "DEAL",
	SpaceDoodad:    "DOODAD",
	SpaceMarket:    "MARKET",
	SpacePayDay:    "PAY_DAY",
	SpaceCharity:   "CHARITY",
	SpaceDownsized: "DOWNSIZED",
	SpaceBaby:      "BABY",
}

func (s SpaceType) String() string {
	if name, ok := spaceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SPACE_%d", int(s))
}

// FastTrackSpaceType identifies the kind of a fast-track board space.
type FastTrackSpaceType int

const (
	FastTrackCashFlowDay FastTrackSpaceType = iota
	FastTrackBusiness
	FastTrackCharity
	FastTrackTaxAudit
	FastTrackLawsuit
	FastTrackDivorce
	FastTrackDream
)

var fastTrackSpaceNames = map[FastTrackSpaceType]string{
	FastTrackCashFlowDay: "CASH_FLOW_DAY",
	FastTrackBusiness:    "BUSINESS",
	FastTrackCharity:     "CHARITY",
	FastTrackTaxAudit:    "TAX_AUDIT",
	FastTrackLawsuit:     "LAWSUIT",
	FastTrackDivorce:     "DIVORCE",
	FastTrackDream:       "DREAM",
}

func (s FastTrackSpaceType) String() string {
	if name, ok := fastTrackSpaceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FAST_TRACK_SPACE_%d", int(s))
}

// RatRaceLength is the number of spaces on the rat-race loop.
const RatRaceLength = 24

// FastTrackLength is the number of spaces on the fast-track loop.
const FastTrackLength = 26

// ratRaceSpaces is the fixed rat-race layout. Deal spaces sit on every even
// position; paydays recur every eighth space.
var ratRaceSpaces = [RatRaceLength]SpaceType{
	0:  SpaceDeal,
	1:  SpaceDoodad,
	2:  SpaceDeal,
	3:  SpaceCharity,
	4:  SpaceDeal,
	5:  SpacePayDay,
	6:  SpaceDeal,
	7:  SpaceMarket,
	8:  SpaceDeal,
	9:  SpaceDoodad,
	10: SpaceDeal,
	11: SpaceDownsized,
	12: SpaceDeal,
	13: SpacePayDay,
	14: SpaceDeal,
	15: SpaceMarket,
	16: SpaceDeal,
	17: SpaceDoodad,
	18: SpaceDeal,
	19: SpaceBaby,
	20: SpaceDeal,
	21: SpacePayDay,
	22: SpaceDeal,
	23: SpaceMarket,
}

// fastTrackSpaces is the fixed fast-track layout. Cash-flow days recur every
// fifth space (positions ending the five sectors); the eight dream spaces are
// spread across the loop.
var fastTrackSpaces = [FastTrackLength]FastTrackSpaceType{
	0:  FastTrackCashFlowDay,
	1:  FastTrackBusiness,
	2:  FastTrackDream,
	3:  FastTrackBusiness,
	4:  FastTrackTaxAudit,
	5:  FastTrackCashFlowDay,
	6:  FastTrackDream,
	7:  FastTrackBusiness,
	8:  FastTrackCharity,
	9:  FastTrackDream,
	10: FastTrackCashFlowDay,
	11: FastTrackBusiness,
	12: FastTrackDream,
	13: FastTrackLawsuit,
	14: FastTrackBusiness,
	15: FastTrackCashFlowDay,
	16: FastTrackDream,
	17: FastTrackBusiness,
	18: FastTrackDivorce,
	19: FastTrackDream,
	20: FastTrackCashFlowDay,
	21: FastTrackBusiness,
	22: FastTrackDream,
	23: FastTrackTaxAudit,
	24: FastTrackDream,
	25: FastTrackBusiness,
}

// Move advances a rat-race position by steps, wrapping at the board length.
func Move(position, steps int) int {
	return (position + steps) % RatRaceLength
}

// MoveFastTrack advances a fast-track position by steps, wrapping at the
// fast-track board length.
func MoveFastTrack(position, steps int) int {
	return (position + steps) % FastTrackLength
}

// PayDaysPassed counts how many payday spaces lie strictly after oldPos and
// up to and including newPos, walking forward with wraparound. steps bounds
// the walk so that a full-loop move counts every payday it crosses.
func PayDaysPassed(oldPos, steps int) int {
	count := 0
	for i := 1; i <= steps; i++ {
		if ratRaceSpaces[(oldPos+i)%RatRaceLength] == SpacePayDay {
			count++
		}
	}
	return count
}

// CashFlowDaysPassed is the fast-track analogue of PayDaysPassed.
func CashFlowDaysPassed(oldPos, steps int) int {
	count := 0
	for i := 1; i <= steps; i++ {
		if fastTrackSpaces[(oldPos+i)%FastTrackLength] == FastTrackCashFlowDay {
			count++
		}
	}
	return count
}

// SpaceAt returns the rat-race space type at position.
func SpaceAt(position int) SpaceType {
	return ratRaceSpaces[((position%RatRaceLength)+RatRaceLength)%RatRaceLength]
}

// FastTrackSpaceAt returns the fast-track space type at position.
func FastTrackSpaceAt(position int) FastTrackSpaceType {
	return fastTrackSpaces[((position%FastTrackLength)+FastTrackLength)%FastTrackLength]
}

// DreamPositions returns the fast-track positions that hold dream spaces, in
// board order. Players pick one of these when they escape the rat race.
func DreamPositions() []int {
	positions := make([]int, 0, 8)
	for i, s := range fastTrackSpaces {
		if s == FastTrackDream {
			positions = append(positions, i)
		}
	}
	return positions
}
