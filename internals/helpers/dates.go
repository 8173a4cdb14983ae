package helper

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format for date-only fields ("2006-01-02").
// DTOs carry them as strings so the API never leaks timezone noise.
const DateLayout = "2006-01-02"

func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
