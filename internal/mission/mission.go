package mission

import "time"

// Mission is the daily flavor narrative shown before the questions:
// a character who needs pizza, and the start and end of the trail.
type Mission struct {
	Character     string `json:"character"`
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
}

// DateKey is the calendar-day key format used everywhere a session or
// mission is keyed by date.
const DateKey = "2006-01-02"

// TodayKey returns today's date key in UTC.
func TodayKey() string {
	return time.Now().UTC().Format(DateKey)
}

// Generate derives the mission for a date key. The same key always
// yields the same mission on every device, with no network access.
//
// The derivation must stay bit-for-bit stable: existing players already
// saw today's mission, so the mixing constants and list contents below
// are frozen. See rand.go for the mixer.
func Generate(dateKey string) Mission {
	rng := newSeededRand(dateKey)

	character := Characters[rng.Intn(len(Characters))]

	startIdx := rng.Intn(len(Locations))

	// Draw the end from N-1 slots and shift past the start index,
	// guaranteeing end != start.
	endIdx := rng.Intn(len(Locations) - 1)
	if endIdx >= startIdx {
		endIdx++
	}

	return Mission{
		Character:     character,
		StartLocation: Locations[startIdx],
		EndLocation:   Locations[endIdx],
	}
}
