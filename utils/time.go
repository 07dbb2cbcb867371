package utils

import "time"

// LagosTime returns the current time in West Africa Time (UTC+1, no DST).
func LagosTime() time.Time {
	lagosLocation, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		return time.Now().UTC().Add(1 * time.Hour)
	}
	return time.Now().In(lagosLocation)
}
