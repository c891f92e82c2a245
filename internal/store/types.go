package store

import "time"

// PaymentMethod is how a booking was paid for.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// OccupancyLevel classifies how full the facility currently is.
type OccupancyLevel string

const (
	LevelLow    OccupancyLevel = "low"
	LevelMedium OccupancyLevel = "medium"
	LevelFull   OccupancyLevel = "full"
)

// Child is a guardian-managed profile.
type Child struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Allergies []string  `json:"allergies"`
	Notes     string    `json:"notes"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Booking is a reservation for one child for one play session on one day.
// ChildName is captured at booking time and never re-synced on child edits.
type Booking struct {
	ID            string        `json:"id"`
	ChildID       string        `json:"childId"`
	ChildName     string        `json:"childName"`
	Date          string        `json:"date"` // ISO calendar date, e.g. "2024-06-01"
	TimeSlot      string        `json:"timeSlot"`
	Duration      int           `json:"duration"` // minutes
	Payment       float64       `json:"payment"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// WaitingListEntry is a per-day FIFO queue slot for a child awaiting admission.
// Position is the rank at insertion time; it is never renumbered on removal.
type WaitingListEntry struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"childId"`
	ChildName string    `json:"childName"`
	Date      string    `json:"date"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// AppState is the aggregate root persisted as a single snapshot document.
type AppState struct {
	Children         []Child            `json:"children"`
	Bookings         []Booking          `json:"bookings"`
	WaitingList      []WaitingListEntry `json:"waitingList"`
	CurrentOccupancy int                `json:"currentOccupancy"`
	MaxCapacity      int                `json:"maxCapacity"`
}

// ChildParams are the caller-supplied fields for a new child.
type ChildParams struct {
	Name      string
	Age       int
	Allergies []string
	Notes     string
	Avatar    string
}

// ChildUpdate is a partial update; nil fields are left unchanged.
type ChildUpdate struct {
	Name      *string
	Age       *int
	Allergies *[]string
	Notes     *string
	Avatar    *string
}

// BookingParams are the caller-supplied fields for a new booking.
type BookingParams struct {
	ChildID       string
	ChildName     string
	Date          string
	TimeSlot      string
	Duration      int
	Payment       float64
	PaymentMethod PaymentMethod
}

// WaitingListParams are the caller-supplied fields for a new waiting-list entry.
type WaitingListParams struct {
	ChildID   string
	ChildName string
	Date      string
}
