package raceclock

import "time"

// Location is the reference frame for every date in the collected
// dataset. The API reports race dates and session times in UTC, so
// all year arithmetic happens there no matter where the collecting
// host ends up running.
var Location = time.UTC

func Now() time.Time {
	return time.Now().In(Location)
}
