package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"workoutmap/internal/workout"
)

// PopupText is the text shown in a workout's marker popup
func PopupText(w workout.Workout) string {
	return w.Type.Icon() + " " + w.Description
}

// PopupClass is the style class of a workout's marker popup
func PopupClass(w workout.Workout) string {
	return string(w.Type) + "-popup"
}

// EntryText renders the list entry for a workout. Restored records are
// plain data, so missing fields render as "-" rather than being recomputed.
//
// Cycling entries label elevation gain as km/h and speed as m. That is how
// the list has always read; see DESIGN.md before changing it.
func EntryText(w workout.Workout) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✕ %s\n", w.Description)
	details := []string{
		detail(w.Type.Icon(), number(w.Distance), "km"),
		detail("⏱", number(w.Duration), "min"),
	}

	switch w.Type {
	case workout.Running:
		details = append(details,
			detail("⚡️", fixed1(w.Pace), "min/km"),
			detail("🦶🏼", optional(w.Cadence), "spm"),
		)
	case workout.Cycling:
		details = append(details,
			detail("⚡️", optional(w.ElevationGain), "km/h"),
			detail("⛰", optional(w.Speed), "m"),
		)
	}

	b.WriteString(strings.Join(details, "  "))
	return b.String()
}

func detail(icon, value, unit string) string {
	return icon + " " + value + " " + unit
}

// number formats like the shortest round-trip representation, e.g. 5 or 0.25
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return number(*v)
}

func fixed1(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
