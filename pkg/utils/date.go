package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayBounds expands a calendar date to its start-of-day and end-of-day
// timestamps, as the POS ledger API expects on date-ranged queries.
func DayBounds(date time.Time) (string, string) {
	day := date.Format("2006-01-02")
	return day + "T00:00:00", day + "T23:59:59"
}
