package utils

import "fmt"

// FormatSlotRange builds the "startTime - endTime" descriptor the booking
// endpoint expects, e.g. "4:00 PM - 5:00 PM".
func FormatSlotRange(startTime, endTime string) string {
	return fmt.Sprintf("%s - %s", startTime, endTime)
}
