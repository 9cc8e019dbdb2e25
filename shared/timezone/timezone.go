package timezone

import (
	"fieldserve/shared/constant"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

// Configure loads an IANA zone name such as "Asia/Kolkata". An empty name selects UTC.
// On error the previous location is kept.
func Configure(name string) error {
	if name == constant.Empty {
		location.Store(time.UTC)
		log.Warn().Msg("no timezone configured, using UTC")

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("failed to load timezone")

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	location.Store(loc)
	log.Info().Str("timezone", loc.String()).Msg("application timezone configured")

	return nil
}

// GetLocation returns the application location, UTC until configured.
func GetLocation() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse interprets value as wall-clock time in the application location.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// BusinessDate truncates t to midnight of its calendar day in the application location.
func BusinessDate(t time.Time) time.Time {
	local := ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// DayRange returns the half-open instant range [start, end) covering the business days from
// through to, so timestamp columns group by the application's calendar rather than the session's.
func DayRange(from, to time.Time) (start, end time.Time) {
	return BusinessDate(from), BusinessDate(to).AddDate(0, 0, 1)
}

func Today() time.Time {
	return BusinessDate(Now())
}

func ParseBusinessDate(value string) (time.Time, error) {
	return Parse(constant.BusinessDateFormat, value)
}
