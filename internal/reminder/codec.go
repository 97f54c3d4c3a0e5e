package reminder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// record is the persisted shape of an item. Optional fields may be absent
// in older data.
type record struct {
	ID        string    `json:"id"`
	Type      Kind      `json:"type"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Date      string    `json:"date,omitempty"`
	Time      string    `json:"time,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	AlarmSent *bool     `json:"alarmSent,omitempty"`
}

func toRecord(it Item) record {
	rec := record{
		ID:        it.ItemID(),
		Type:      it.ItemKind(),
		Title:     it.ItemTitle(),
		Category:  it.ItemCategory(),
		CreatedAt: it.ItemCreatedAt(),
	}
	if r, ok := it.(*Reminder); ok {
		sent := r.AlarmSent
		rec.Date = r.Date
		rec.Time = r.Time
		rec.AlarmSent = &sent
	}
	return rec
}

func (rec record) toItem() (Item, error) {
	switch rec.Type {
	case KindReminder:
		r := &Reminder{
			ID:        rec.ID,
			Title:     rec.Title,
			Category:  rec.Category,
			Date:      rec.Date,
			Time:      rec.Time,
			CreatedAt: rec.CreatedAt,
		}
		if rec.AlarmSent != nil {
			r.AlarmSent = *rec.AlarmSent
		}
		return r, nil
	case KindNote:
		return &Note{
			ID:        rec.ID,
			Title:     rec.Title,
			Category:  rec.Category,
			CreatedAt: rec.CreatedAt,
		}, nil
	default:
		return nil, fmt.Errorf("item %s: unknown type %q", rec.ID, rec.Type)
	}
}

// MarshalItems encodes items as a JSON array of records.
func MarshalItems(items []Item) ([]byte, error) {
	recs := make([]record, 0, len(items))
	for _, it := range items {
		recs = append(recs, toRecord(it))
	}
	return json.MarshalIndent(recs, "", "  ")
}

// UnmarshalItems decodes a JSON array of records. Empty input yields an
// empty slice.
func UnmarshalItems(data []byte) ([]Item, error) {
	items := []Item{}
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}

	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	for _, rec := range recs {
		it, err := rec.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
