package ergast

import (
	"fmt"
	"time"
)

// Records are the flat rows handed to the downstream feature
// pipeline. Optional numeric fields are nil when the API encodes them
// with a non-numeric token (a retirement code in place of a finishing
// position, for example), never zero-filled. Optional strings are
// empty when the source omits them.

type Season struct {
	Year int
}

// Race is one grand prix on a season calendar. ID is derived as
// "{season}_{round}" and unique across the whole dataset.
type Race struct {
	Season      int
	Round       int
	ID          string
	Name        string
	CircuitID   string
	CircuitName string
	Country     string
	Date        time.Time
	// scheduled start time of day as reported by the API
	StartTime string
	URL       string
}

// Result is one driver's classification in one race. The leading
// fields repeat the parent race block so each row stands on its own.
type Result struct {
	Season    int
	Round     int
	RaceName  string
	CircuitID string
	Date      time.Time

	// nil for non-finishers classified with a letter code
	Position        *int
	DriverID        string
	DriverName      string
	ConstructorID   string
	ConstructorName string
	Grid            *int
	Laps            int
	Status          string
	Points          float64

	RaceTime       string
	FastestLapRank *int
	FastestLapTime string
}

// QualifyingResult is one driver's grid-setting session in one race
// weekend. Q2 and Q3 are empty for drivers eliminated earlier.
type QualifyingResult struct {
	Season    int
	Round     int
	RaceName  string
	CircuitID string
	Date      time.Time

	Position        int
	DriverID        string
	DriverName      string
	ConstructorID   string
	ConstructorName string

	Q1 string
	Q2 string
	Q3 string
}

type Driver struct {
	DriverID    string
	GivenName   string
	FamilyName  string
	Name        string
	Nationality string
	DateOfBirth *time.Time
	URL         string
}

type Constructor struct {
	ConstructorID string
	Name          string
	Nationality   string
	URL           string
}

// RaceID derives the dataset-wide unique identifier for a race.
func RaceID(season, round int) string {
	return fmt.Sprintf("%d_%d", season, round)
}
