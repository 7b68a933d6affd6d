package ergast

// The API wraps every response in an MRData envelope holding exactly
// one resource table. Container fields are pointers so a container
// that is missing entirely can be told apart from one that is empty,
// numeric leaves stay strings until an extractor coerces them.

type envelope struct {
	MRData *payload `json:"MRData"`
}

type payload struct {
	SeasonTable      *seasonTable      `json:"SeasonTable"`
	RaceTable        *raceTable        `json:"RaceTable"`
	DriverTable      *driverTable      `json:"DriverTable"`
	ConstructorTable *constructorTable `json:"ConstructorTable"`
}

type seasonTable struct {
	Seasons []seasonItem `json:"Seasons"`
}

type seasonItem struct {
	Season string `json:"season"`
	URL    string `json:"url"`
}

type raceTable struct {
	Races []raceItem `json:"Races"`
}

type raceItem struct {
	Season   string       `json:"season"`
	Round    string       `json:"round"`
	RaceName string       `json:"raceName"`
	Circuit  *circuitItem `json:"Circuit"`
	Date     string       `json:"date"`
	Time     string       `json:"time"`
	URL      string       `json:"url"`

	Results           []resultItem     `json:"Results"`
	QualifyingResults []qualifyingItem `json:"QualifyingResults"`
}

type circuitItem struct {
	CircuitID   string        `json:"circuitId"`
	CircuitName string        `json:"circuitName"`
	Location    *locationItem `json:"Location"`
}

type locationItem struct {
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

type resultItem struct {
	Position    string           `json:"position"`
	Points      string           `json:"points"`
	Grid        string           `json:"grid"`
	Laps        string           `json:"laps"`
	Status      string           `json:"status"`
	Driver      *personItem      `json:"Driver"`
	Constructor *constructorItem `json:"Constructor"`
	Time        *clockedTime     `json:"Time"`
	FastestLap  *fastestLap      `json:"FastestLap"`
}

type qualifyingItem struct {
	Position    string           `json:"position"`
	Driver      *personItem      `json:"Driver"`
	Constructor *constructorItem `json:"Constructor"`
	Q1          string           `json:"Q1"`
	Q2          string           `json:"Q2"`
	Q3          string           `json:"Q3"`
}

type driverTable struct {
	Drivers []personItem `json:"Drivers"`
}

type personItem struct {
	DriverID    string `json:"driverId"`
	GivenName   string `json:"givenName"`
	FamilyName  string `json:"familyName"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
	URL         string `json:"url"`
}

type constructorTable struct {
	Constructors []constructorItem `json:"Constructors"`
}

type constructorItem struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
	URL           string `json:"url"`
}

type clockedTime struct {
	Millis string `json:"millis"`
	Time   string `json:"time"`
}

type fastestLap struct {
	Rank string       `json:"rank"`
	Lap  string       `json:"lap"`
	Time *clockedTime `json:"Time"`
}
