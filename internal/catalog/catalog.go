// Package catalog holds the fixed choices offered by the booking flow. The
// store accepts any values without validating against these; they exist so
// every client renders the same options.
package catalog

// DurationOption pairs a session length with its price.
type DurationOption struct {
	Minutes int     `json:"minutes"`
	Price   float64 `json:"price"`
}

// TimeSlots are the selectable session start times.
var TimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// Durations are the selectable session lengths and prices.
var Durations = []DurationOption{
	{Minutes: 30, Price: 15},
	{Minutes: 60, Price: 25},
	{Minutes: 90, Price: 35},
	{Minutes: 120, Price: 45},
}

// Extension terms: each extension adds ExtensionMinutes for ExtensionPrice.
const (
	ExtensionMinutes = 30
	ExtensionPrice   = 10
)

// Avatars are the selectable child profile symbols.
var Avatars = []string{"👶", "👧", "👦", "🧒", "👼", "🎀", "⭐", "🌈"}
