package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupSlotsByDate(t *testing.T) {
	slots := []Slot{
		{ID: "1", Date: "2026-11-02", StartTime: "14:00", EndTime: "15:00"},
		{ID: "2", Date: "2026-11-01", StartTime: "09:00", EndTime: "09:30"},
		{ID: "3", Date: "2026-11-02", StartTime: "16:00", EndTime: "17:00"},
		{ID: "4", Date: "2026-11-01", StartTime: "10:00", EndTime: "10:30"},
	}

	days := GroupSlotsByDate(slots)

	if assert.Len(t, days, 2) {
		assert.Equal(t, "2026-11-02", days[0].Date)
		assert.Equal(t, []ID{"1", "3"}, slotIDs(days[0].Slots))
		assert.Equal(t, "2026-11-01", days[1].Date)
		assert.Equal(t, []ID{"2", "4"}, slotIDs(days[1].Slots))
	}
}

func TestGroupSlotsByDate_Empty(t *testing.T) {
	days := GroupSlotsByDate(nil)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestSlotsOn(t *testing.T) {
	days := GroupSlotsByDate([]Slot{
		{ID: "a", Date: "2026-11-01"},
		{ID: "b", Date: "2026-11-03"},
	})

	assert.Equal(t, []ID{"b"}, slotIDs(SlotsOn(days, "2026-11-03")))
	assert.Nil(t, SlotsOn(days, "2026-12-25"))
	assert.Nil(t, SlotsOn(days, ""))
}

func TestSlotLabel(t *testing.T) {
	s := Slot{StartTime: "14:00", EndTime: "15:00"}
	assert.Equal(t, "14:00–15:00", s.Label())
}

func slotIDs(slots []Slot) []ID {
	ids := make([]ID, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID)
	}
	return ids
}
