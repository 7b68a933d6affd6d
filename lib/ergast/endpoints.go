package ergast

import (
	"fmt"
	"strconv"
)

// resource enumerates the API tables the collector knows how to read.
type resource int

const (
	resourceSeasons resource = iota
	resourceRaces
	resourceResults
	resourceQualifying
	resourceDrivers
	resourceConstructors
)

// endpoint is a request path relative to the API base URL, without
// the ".json" suffix.
type endpoint string

func (e endpoint) path() string {
	return string(e) + ".json"
}

// buildEndpoint resolves a resource plus its identifying parameters
// into a request path. A zero round means "the whole season", a zero
// season means "all time" for the resources that allow it.
func buildEndpoint(r resource, season, round int) endpoint {
	switch r {
	case resourceSeasons:
		return "seasons"
	case resourceRaces:
		return endpoint(strconv.Itoa(season))
	case resourceResults:
		if round > 0 {
			return endpoint(fmt.Sprintf("%d/%d/results", season, round))
		}
		return endpoint(fmt.Sprintf("%d/results", season))
	case resourceQualifying:
		if round > 0 {
			return endpoint(fmt.Sprintf("%d/%d/qualifying", season, round))
		}
		return endpoint(fmt.Sprintf("%d/qualifying", season))
	case resourceDrivers:
		if season > 0 {
			return endpoint(fmt.Sprintf("%d/drivers", season))
		}
		return "drivers"
	case resourceConstructors:
		if season > 0 {
			return endpoint(fmt.Sprintf("%d/constructors", season))
		}
		return "constructors"
	}
	panic(fmt.Sprintf("unknown resource: %d", r))
}
