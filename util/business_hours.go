package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sos-server/models"

	"github.com/jonboulle/clockwork"
)

// CLOSING_SOON_WINDOW_MINUTES is how close to a transition a facility is
// reported as closing-soon / opening-soon.
const CLOSING_SOON_WINDOW_MINUTES = 30

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// status output.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for status computation. Pass nil to reset
// to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

var dayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// FormatTime converts a "0900" or "900" style token to "09:00" display form.
// Tokens of any other length render as "--:--".
func FormatTime(token string) string {
	if token == "" {
		return "--:--"
	}
	if len(token) != 3 && len(token) != 4 {
		return "--:--"
	}

	if len(token) == 3 {
		token = "0" + token
	}
	return token[:2] + ":" + token[2:]
}

// TimeToMinutes converts a "0900" or "900" style token to minutes since
// midnight. The special token "2400" means end of day and maps to 1440.
// Invalid tokens return -1.
func TimeToMinutes(token string) int {
	if token == "" {
		return -1
	}
	if len(token) != 3 && len(token) != 4 {
		return -1
	}

	if len(token) == 3 {
		token = "0" + token
	}
	hours, err := strconv.Atoi(token[:2])
	if err != nil {
		return -1
	}
	minutes, err := strconv.Atoi(token[2:])
	if err != nil {
		return -1
	}

	// 24:00 (midnight, end of this day) is the one allowed hour-24 value.
	if hours == 24 && minutes == 0 {
		return 1440
	}

	if hours > 24 || minutes > 59 {
		return -1
	}
	if hours == 24 && minutes > 0 {
		return -1
	}

	return hours*60 + minutes
}

// GetPharmacyStatus computes the facility's realtime business status against
// the package clock.
func GetPharmacyStatus(f *models.Facility) models.BusinessStatus {
	return GetPharmacyStatusAt(f, clock.Now())
}

// GetPharmacyStatusAt computes the facility's business status at the given
// reference time. Malformed or missing schedule data never produces an
// error; every input resolves to a concrete status, with "unknown" as the
// universal fallback.
//
// Overnight windows (close token numerically before the open token) are not
// special-cased: the same-day window check reports such facilities closed for
// most of the day. The upstream feeds do not say whether those rows mean
// "wraps past midnight" or are data errors, so the behavior is kept as-is.
func GetPharmacyStatusAt(f *models.Facility, now time.Time) models.BusinessStatus {
	currentDay := int(now.Weekday()) // 0=Sunday .. 6=Saturday
	currentMinutes := now.Hour()*60 + now.Minute()

	// 24-hour facilities: the flag, or the "0000" Monday-open marker some
	// feeds use. A fast path, not a timing computation.
	if f.Is24H || f.DutyTime1s == "0000" {
		return models.BusinessStatus{
			Status:    models.STATUS_OPEN,
			Message:   "Open 24 hours",
			Color:     "#10B981",
			TextColor: "#059669",
			Icon:      "🟢",
		}
	}

	var openTime, closeTime string

	if f.BusinessHours != nil {
		// Keyed-by-day form.
		if hours, ok := f.BusinessHours[dayKeys[currentDay]]; ok && strings.Contains(hours, "-") {
			parts := strings.SplitN(hours, "-", 2)
			openTime, closeTime = parts[0], parts[1]
		}
	} else {
		// Raw per-day duty tokens, 1-based with Sunday mapped to 7.
		dayIndex := currentDay
		if dayIndex == 0 {
			dayIndex = 7
		}
		openTime, closeTime = f.DutyTimes(dayIndex)
	}

	if openTime == "" || closeTime == "" {
		return models.BusinessStatus{
			Status:    models.STATUS_UNKNOWN,
			Message:   "No operating hours information",
			Color:     "#9CA3AF",
			TextColor: "#6B7280",
			Icon:      "⚪",
		}
	}

	openMinutes := TimeToMinutes(openTime)
	closeMinutes := TimeToMinutes(closeTime)

	if openMinutes == -1 || closeMinutes == -1 {
		return models.BusinessStatus{
			Status:    models.STATUS_UNKNOWN,
			Message:   "Operating hours error",
			Color:     "#9CA3AF",
			TextColor: "#6B7280",
			Icon:      "⚪",
		}
	}

	// Open window is half-open: inclusive at open, exclusive at close.
	if currentMinutes >= openMinutes && currentMinutes < closeMinutes {
		remainingMinutes := closeMinutes - currentMinutes

		if remainingMinutes <= CLOSING_SOON_WINDOW_MINUTES {
			return models.BusinessStatus{
				Status:    models.STATUS_CLOSING_SOON,
				Message:   fmt.Sprintf("Closing soon (%s)", FormatTime(closeTime)),
				Color:     "#F59E0B",
				TextColor: "#D97706",
				Icon:      "🟡",
				ClosesAt:  FormatTime(closeTime),
			}
		}

		return models.BusinessStatus{
			Status:    models.STATUS_OPEN,
			Message:   fmt.Sprintf("Open until %s", FormatTime(closeTime)),
			Color:     "#10B981",
			TextColor: "#059669",
			Icon:      "🟢",
			ClosesAt:  FormatTime(closeTime),
		}
	}

	if currentMinutes < openMinutes && openMinutes-currentMinutes <= CLOSING_SOON_WINDOW_MINUTES {
		return models.BusinessStatus{
			Status:    models.STATUS_OPENING_SOON,
			Message:   fmt.Sprintf("Opening soon (%s)", FormatTime(openTime)),
			Color:     "#3B82F6",
			TextColor: "#2563EB",
			Icon:      "🔵",
			OpensAt:   FormatTime(openTime),
		}
	}

	return models.BusinessStatus{
		Status:    models.STATUS_CLOSED,
		Message:   fmt.Sprintf("Closed (opens %s)", FormatTime(openTime)),
		Color:     "#EF4444",
		TextColor: "#DC2626",
		Icon:      "🔴",
		OpensAt:   FormatTime(openTime),
	}
}

// GetAnimalHospitalStatus computes an animal hospital's business status.
// Animal hospitals reuse the pharmacy schedule fields, so this is the same
// algorithm under its own name.
func GetAnimalHospitalStatus(f *models.Facility) models.BusinessStatus {
	return GetPharmacyStatus(f)
}

// GetAnimalHospitalStatusAt is GetPharmacyStatusAt under the animal-hospital
// name.
func GetAnimalHospitalStatusAt(f *models.Facility, now time.Time) models.BusinessStatus {
	return GetPharmacyStatusAt(f, now)
}

// FilterOpenNow keeps only facilities currently usable for the given
// category. Emergency rooms and AEDs are always available; pharmacies and
// animal hospitals must be open or closing soon.
func FilterOpenNow(items []models.Facility, category string) []models.Facility {
	out := make([]models.Facility, 0, len(items))
	for _, item := range items {
		if category == models.CATEGORY_PHARMACY || category == models.CATEGORY_ANIMAL_HOSPITAL {
			status := GetPharmacyStatus(&item)
			if status.Status != models.STATUS_OPEN && status.Status != models.STATUS_CLOSING_SOON {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
