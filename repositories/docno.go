package repositories

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nextDocumentNo produces the next number in the PREFIX+YYMMDD+NNNN
// series. The sequence resets when the date part changes.
func nextDocumentNo(lastNo, prefix string) string {
	currentDate := time.Now().Format("060102")

	if strings.HasPrefix(lastNo, prefix) && len(lastNo) == len(prefix)+10 {
		lastDatePart := lastNo[len(prefix) : len(prefix)+6]
		if lastDatePart == currentDate {
			lastSequence, _ := strconv.Atoi(lastNo[len(prefix)+6:])
			return fmt.Sprintf("%s%s%04d", prefix, currentDate, lastSequence+1)
		}
	}

	return fmt.Sprintf("%s%s%04d", prefix, currentDate, 1)
}
