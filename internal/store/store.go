package store

import (
	"log"
	"sort"
	"sync"
	"time"
)

// DefaultMaxCapacity is used when no capacity is configured.
const DefaultMaxCapacity = 20

// Persister loads and saves the full application state snapshot.
type Persister interface {
	// Load returns the last persisted state, or nil if none exists.
	Load() (*AppState, error)
	// Save durably writes the full state.
	Save(state *AppState) error
}

// AppStore owns the in-memory AppState and is the only component that touches
// persistence. Every mutation applies in memory first and then writes the full
// snapshot; a failed write is returned to the caller but never rolls the
// in-memory change back.
type AppStore struct {
	mu      sync.Mutex
	state   AppState
	persist Persister

	clock func() time.Time
}

// New creates an AppStore, loading the previously persisted snapshot. A
// missing or unreadable snapshot falls back to the default empty state.
func New(p Persister, maxCapacity int) *AppStore {
	if maxCapacity <= 0 {
		maxCapacity = DefaultMaxCapacity
	}

	s := &AppStore{
		persist: p,
		clock:   time.Now,
		state: AppState{
			Children:    []Child{},
			Bookings:    []Booking{},
			WaitingList: []WaitingListEntry{},
			MaxCapacity: maxCapacity,
		},
	}

	if p == nil {
		return s
	}

	loaded, err := p.Load()
	if err != nil {
		log.Printf("failed to load persisted state, starting fresh: %v", err)
		return s
	}
	if loaded != nil {
		if loaded.MaxCapacity <= 0 {
			loaded.MaxCapacity = maxCapacity
		}
		s.state = *loaded
	}
	return s
}

// State returns a deep copy of the current application state.
func (s *AppStore) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(&s.state)
}

// AddChild appends a new child profile and returns it.
func (s *AppStore) AddChild(params ChildParams) (Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	child := Child{
		ID:        newChildID(now),
		Name:      params.Name,
		Age:       params.Age,
		Allergies: append([]string{}, params.Allergies...),
		Notes:     params.Notes,
		Avatar:    params.Avatar,
		CreatedAt: now,
	}
	s.state.Children = append(s.state.Children, child)
	return child, s.persistLocked()
}

// UpdateChild applies a partial update to the matching child. Unknown ids are
// a silent no-op.
func (s *AppStore) UpdateChild(id string, upd ChildUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Children {
		if s.state.Children[i].ID != id {
			continue
		}
		c := &s.state.Children[i]
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Age != nil {
			c.Age = *upd.Age
		}
		if upd.Allergies != nil {
			c.Allergies = append([]string{}, (*upd.Allergies)...)
		}
		if upd.Notes != nil {
			c.Notes = *upd.Notes
		}
		if upd.Avatar != nil {
			c.Avatar = *upd.Avatar
		}
		return s.persistLocked()
	}
	return nil
}

// DeleteChild removes the matching child. Bookings and waiting-list entries
// referencing the child are left untouched; they keep the denormalized name.
func (s *AppStore) DeleteChild(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Children {
		if s.state.Children[i].ID == id {
			s.state.Children = append(s.state.Children[:i], s.state.Children[i+1:]...)
			return s.persistLocked()
		}
	}
	return nil
}

// AddBooking appends a new active booking and bumps the occupancy counter.
func (s *AppStore) AddBooking(params BookingParams) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	booking := Booking{
		ID:            newBookingID(),
		ChildID:       params.ChildID,
		ChildName:     params.ChildName,
		Date:          params.Date,
		TimeSlot:      params.TimeSlot,
		Duration:      params.Duration,
		Payment:       params.Payment,
		PaymentMethod: params.PaymentMethod,
		Status:        StatusActive,
		CreatedAt:     now,
	}
	s.state.Bookings = append(s.state.Bookings, booking)
	s.state.CurrentOccupancy = clamp(s.state.CurrentOccupancy+1, 0, s.state.MaxCapacity)
	return booking, s.persistLocked()
}

// ExtendBooking adds minutes and payment to the matching booking. The status
// is not checked; completed bookings remain extendable.
func (s *AppStore) ExtendBooking(id string, additionalMinutes int, additionalPayment float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Bookings {
		if s.state.Bookings[i].ID == id {
			s.state.Bookings[i].Duration += additionalMinutes
			s.state.Bookings[i].Payment += additionalPayment
			return s.persistLocked()
		}
	}
	return nil
}

// CompleteBooking marks the matching booking completed and lowers the
// occupancy counter.
func (s *AppStore) CompleteBooking(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Bookings {
		if s.state.Bookings[i].ID == id {
			s.state.Bookings[i].Status = StatusCompleted
			s.state.CurrentOccupancy = clamp(s.state.CurrentOccupancy-1, 0, s.state.MaxCapacity)
			return s.persistLocked()
		}
	}
	return nil
}

// AddToWaitingList appends a queue entry for the given date. The position is
// the count of existing entries sharing that date plus one.
func (s *AppStore) AddToWaitingList(params WaitingListParams) (WaitingListEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := 1
	for _, w := range s.state.WaitingList {
		if w.Date == params.Date {
			position++
		}
	}

	now := s.clock()
	entry := WaitingListEntry{
		ID:        newWaitingID(now),
		ChildID:   params.ChildID,
		ChildName: params.ChildName,
		Date:      params.Date,
		Position:  position,
		CreatedAt: now,
	}
	s.state.WaitingList = append(s.state.WaitingList, entry)
	return entry, s.persistLocked()
}

// RemoveFromWaitingList removes the matching entry and returns it. Positions
// of the remaining entries keep their at-insertion rank.
func (s *AppStore) RemoveFromWaitingList(id string) (WaitingListEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.WaitingList {
		if s.state.WaitingList[i].ID == id {
			removed := s.state.WaitingList[i]
			s.state.WaitingList = append(s.state.WaitingList[:i], s.state.WaitingList[i+1:]...)
			return removed, true, s.persistLocked()
		}
	}
	return WaitingListEntry{}, false, nil
}

// ShiftOccupancy applies a clamped delta to the occupancy counter and returns
// the new value. Used by the drift simulator.
func (s *AppStore) ShiftOccupancy(delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentOccupancy = clamp(s.state.CurrentOccupancy+delta, 0, s.state.MaxCapacity)
	return s.state.CurrentOccupancy, s.persistLocked()
}

// CurrentOccupancy returns the current and maximum occupancy.
func (s *AppStore) CurrentOccupancy() (current, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentOccupancy, s.state.MaxCapacity
}

// OccupancyLevel classifies the current occupancy ratio.
func (s *AppStore) OccupancyLevel() OccupancyLevel {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratio := float64(s.state.CurrentOccupancy) / float64(s.state.MaxCapacity)
	switch {
	case ratio < 0.5:
		return LevelLow
	case ratio < 0.8:
		return LevelMedium
	default:
		return LevelFull
	}
}

// TodayBookings returns the active bookings for the current calendar day in
// the local timezone.
func (s *AppStore) TodayBookings() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.clock().Format("2006-01-02")
	out := []Booking{}
	for _, b := range s.state.Bookings {
		if b.Date == today && b.Status == StatusActive {
			out = append(out, b)
		}
	}
	return out
}

// RecentBookings returns up to n bookings, newest first. Ties on the creation
// timestamp keep insertion order.
func (s *AppStore) RecentBookings(n int) []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]Booking{}, s.state.Bookings...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// persistLocked writes the full snapshot. Callers must hold s.mu.
func (s *AppStore) persistLocked() error {
	if s.persist == nil {
		return nil
	}
	snapshot := copyState(&s.state)
	if err := s.persist.Save(&snapshot); err != nil {
		log.Printf("failed to persist state: %v", err)
		return err
	}
	return nil
}

func copyState(st *AppState) AppState {
	out := AppState{
		Children:         make([]Child, len(st.Children)),
		Bookings:         append([]Booking{}, st.Bookings...),
		WaitingList:      append([]WaitingListEntry{}, st.WaitingList...),
		CurrentOccupancy: st.CurrentOccupancy,
		MaxCapacity:      st.MaxCapacity,
	}
	for i, c := range st.Children {
		c.Allergies = append([]string{}, c.Allergies...)
		out.Children[i] = c
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
