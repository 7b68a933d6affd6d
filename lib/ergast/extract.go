package ergast

import (
	"slices"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// isDigits reports whether s is one or more ASCII digits. The API
// encodes non-finishing positions with letter codes ("R", "D", "W"),
// those must come out absent rather than zero.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// optionalInt coerces a digits-only string, mapping anything else to
// an absent value.
func optionalInt(s string) *int {
	if !isDigits(s) {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func mandatoryInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &SchemaError{Field: field, Err: err}
	}
	return n, nil
}

func mandatoryFloat(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &SchemaError{Field: field, Err: err}
	}
	return f, nil
}

func mandatoryDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &SchemaError{Field: field, Err: err}
	}
	return t, nil
}

func fullName(p personItem) string {
	return p.GivenName + " " + p.FamilyName
}

func raceBlocks(env *envelope) ([]raceItem, error) {
	if env == nil || env.MRData == nil {
		return nil, &SchemaError{Field: "MRData"}
	}
	if env.MRData.RaceTable == nil {
		return nil, &SchemaError{Field: "MRData.RaceTable"}
	}
	return env.MRData.RaceTable.Races, nil
}

// raceContext is the shared prefix copied into every per-driver
// record derived from one race block.
type raceContext struct {
	season    int
	round     int
	raceName  string
	circuitID string
	date      time.Time
}

func newRaceContext(race raceItem) (raceContext, error) {
	season, err := mandatoryInt("Races.season", race.Season)
	if err != nil {
		return raceContext{}, err
	}
	round, err := mandatoryInt("Races.round", race.Round)
	if err != nil {
		return raceContext{}, err
	}
	if race.Circuit == nil {
		return raceContext{}, &SchemaError{Field: "Races.Circuit"}
	}
	date, err := mandatoryDate("Races.date", race.Date)
	if err != nil {
		return raceContext{}, err
	}
	return raceContext{
		season:    season,
		round:     round,
		raceName:  race.RaceName,
		circuitID: race.Circuit.CircuitID,
		date:      date,
	}, nil
}

func extractSeasons(env *envelope, startYear, endYear int) ([]Season, error) {
	if env == nil || env.MRData == nil {
		return nil, &SchemaError{Field: "MRData"}
	}
	if env.MRData.SeasonTable == nil {
		return nil, &SchemaError{Field: "MRData.SeasonTable"}
	}

	seen := map[int]bool{}
	var seasons []Season
	for _, item := range env.MRData.SeasonTable.Seasons {
		year, err := mandatoryInt("Seasons.season", item.Season)
		if err != nil {
			return nil, err
		}
		// bounds are inclusive on both ends
		if year < startYear || year > endYear || seen[year] {
			continue
		}
		seen[year] = true
		seasons = append(seasons, Season{Year: year})
	}

	slices.SortFunc(seasons, func(a, b Season) int {
		return a.Year - b.Year
	})
	return seasons, nil
}

func extractRaces(env *envelope) ([]Race, error) {
	races, err := raceBlocks(env)
	if err != nil {
		return nil, err
	}

	var out []Race
	for _, item := range races {
		rctx, err := newRaceContext(item)
		if err != nil {
			return nil, err
		}
		if item.Circuit.Location == nil {
			return nil, &SchemaError{Field: "Races.Circuit.Location"}
		}

		out = append(out, Race{
			Season:      rctx.season,
			Round:       rctx.round,
			ID:          RaceID(rctx.season, rctx.round),
			Name:        item.RaceName,
			CircuitID:   item.Circuit.CircuitID,
			CircuitName: item.Circuit.CircuitName,
			Country:     item.Circuit.Location.Country,
			Date:        rctx.date,
			StartTime:   item.Time,
			URL:         item.URL,
		})
	}
	return out, nil
}

func extractResults(env *envelope) ([]Result, error) {
	races, err := raceBlocks(env)
	if err != nil {
		return nil, err
	}

	var out []Result
	for _, race := range races {
		rctx, err := newRaceContext(race)
		if err != nil {
			return nil, err
		}

		for _, item := range race.Results {
			if item.Driver == nil {
				return nil, &SchemaError{Field: "Results.Driver"}
			}
			if item.Constructor == nil {
				return nil, &SchemaError{Field: "Results.Constructor"}
			}
			laps, err := mandatoryInt("Results.laps", item.Laps)
			if err != nil {
				return nil, err
			}
			points, err := mandatoryFloat("Results.points", item.Points)
			if err != nil {
				return nil, err
			}

			rec := Result{
				Season:    rctx.season,
				Round:     rctx.round,
				RaceName:  rctx.raceName,
				CircuitID: rctx.circuitID,
				Date:      rctx.date,

				Position:        optionalInt(item.Position),
				DriverID:        item.Driver.DriverID,
				DriverName:      fullName(*item.Driver),
				ConstructorID:   item.Constructor.ConstructorID,
				ConstructorName: item.Constructor.Name,
				Grid:            optionalInt(item.Grid),
				Laps:            laps,
				Status:          item.Status,
				Points:          points,
			}
			if item.Time != nil {
				rec.RaceTime = item.Time.Time
			}
			if item.FastestLap != nil {
				rec.FastestLapRank = optionalInt(item.FastestLap.Rank)
				if item.FastestLap.Time != nil {
					rec.FastestLapTime = item.FastestLap.Time.Time
				}
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

func extractQualifying(env *envelope) ([]QualifyingResult, error) {
	races, err := raceBlocks(env)
	if err != nil {
		return nil, err
	}

	var out []QualifyingResult
	for _, race := range races {
		rctx, err := newRaceContext(race)
		if err != nil {
			return nil, err
		}

		for _, item := range race.QualifyingResults {
			if item.Driver == nil {
				return nil, &SchemaError{Field: "QualifyingResults.Driver"}
			}
			if item.Constructor == nil {
				return nil, &SchemaError{Field: "QualifyingResults.Constructor"}
			}
			position, err := mandatoryInt("QualifyingResults.position", item.Position)
			if err != nil {
				return nil, err
			}

			out = append(out, QualifyingResult{
				Season:    rctx.season,
				Round:     rctx.round,
				RaceName:  rctx.raceName,
				CircuitID: rctx.circuitID,
				Date:      rctx.date,

				Position:        position,
				DriverID:        item.Driver.DriverID,
				DriverName:      fullName(*item.Driver),
				ConstructorID:   item.Constructor.ConstructorID,
				ConstructorName: item.Constructor.Name,

				Q1: item.Q1,
				Q2: item.Q2,
				Q3: item.Q3,
			})
		}
	}
	return out, nil
}

func extractDrivers(env *envelope) ([]Driver, error) {
	if env == nil || env.MRData == nil {
		return nil, &SchemaError{Field: "MRData"}
	}
	if env.MRData.DriverTable == nil {
		return nil, &SchemaError{Field: "MRData.DriverTable"}
	}

	var out []Driver
	for _, item := range env.MRData.DriverTable.Drivers {
		if item.DriverID == "" {
			return nil, &SchemaError{Field: "Drivers.driverId"}
		}

		d := Driver{
			DriverID:    item.DriverID,
			GivenName:   item.GivenName,
			FamilyName:  item.FamilyName,
			Name:        fullName(item),
			Nationality: item.Nationality,
			URL:         item.URL,
		}
		if item.DateOfBirth != "" {
			dob, err := mandatoryDate("Drivers.dateOfBirth", item.DateOfBirth)
			if err != nil {
				return nil, err
			}
			d.DateOfBirth = &dob
		}
		out = append(out, d)
	}
	return out, nil
}

func extractConstructors(env *envelope) ([]Constructor, error) {
	if env == nil || env.MRData == nil {
		return nil, &SchemaError{Field: "MRData"}
	}
	if env.MRData.ConstructorTable == nil {
		return nil, &SchemaError{Field: "MRData.ConstructorTable"}
	}

	var out []Constructor
	for _, item := range env.MRData.ConstructorTable.Constructors {
		if item.ConstructorID == "" {
			return nil, &SchemaError{Field: "Constructors.constructorId"}
		}

		out = append(out, Constructor{
			ConstructorID: item.ConstructorID,
			Name:          item.Name,
			Nationality:   item.Nationality,
			URL:           item.URL,
		})
	}
	return out, nil
}
