package ergast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildEndpoint(t *testing.T) {
	testCases := []struct {
		resource resource
		season   int
		round    int
		expected endpoint
	}{
		{resourceSeasons, 0, 0, "seasons"},
		{resourceRaces, 2021, 0, "2021"},
		{resourceResults, 2021, 0, "2021/results"},
		{resourceResults, 2021, 7, "2021/7/results"},
		{resourceQualifying, 2021, 0, "2021/qualifying"},
		{resourceQualifying, 2021, 7, "2021/7/qualifying"},
		{resourceDrivers, 0, 0, "drivers"},
		{resourceDrivers, 2021, 0, "2021/drivers"},
		{resourceConstructors, 0, 0, "constructors"},
		{resourceConstructors, 2021, 0, "2021/constructors"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, buildEndpoint(test.resource, test.season, test.round))
	}
}

func TestEndpointPathSuffix(t *testing.T) {
	require.Equal(t, "2021/7/results.json", buildEndpoint(resourceResults, 2021, 7).path())
	require.Equal(t, "seasons.json", endpoint("seasons").path())
}
