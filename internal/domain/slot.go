package domain

// Slot is a landlord-defined viewing window.
type Slot struct {
	ID         ID     `json:"id"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	PropertyID ID     `json:"propertyId,omitempty"`
}

func (s Slot) Label() string {
	return s.StartTime + "–" + s.EndTime
}

// SlotDay is every slot that falls on one date.
type SlotDay struct {
	Date  string
	Slots []Slot
}

// GroupSlotsByDate buckets slots by their date. Dates keep the order in which
// they first appear, and slots keep their order within a date.
func GroupSlotsByDate(slots []Slot) []SlotDay {
	days := make([]SlotDay, 0)
	index := make(map[string]int)
	for _, s := range slots {
		i, ok := index[s.Date]
		if !ok {
			i = len(days)
			index[s.Date] = i
			days = append(days, SlotDay{Date: s.Date})
		}
		days[i].Slots = append(days[i].Slots, s)
	}
	return days
}

// SlotsOn returns the slots grouped under date, or nil.
func SlotsOn(days []SlotDay, date string) []Slot {
	for _, d := range days {
		if d.Date == date {
			return d.Slots
		}
	}
	return nil
}
