package reminder

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

// minPrefixLen is the shortest ID prefix Find accepts.
const minPrefixLen = 4

// Collection is the authoritative in-memory item list. It is loaded once
// from a Store and written back after every mutation.
type Collection struct {
	mu       sync.RWMutex
	store    Store
	items    []Item
	onChange []func()
}

// LoadCollection reads the stored items into a new Collection.
func LoadCollection(ctx context.Context, store Store) (*Collection, error) {
	items, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ItemID()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, it.ItemID())
		}
		seen[it.ItemID()] = true
	}

	return &Collection{store: store, items: items}, nil
}

// OnChange registers fn to run after Add or Delete commits. Alarm
// write-backs do not trigger it.
func (c *Collection) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

// Snapshot returns a copy of the current items in order.
func (c *Collection) Snapshot() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = Clone(it)
	}
	return out
}

// Len returns the number of items.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns a copy of the item with the given id.
func (c *Collection) Get(id string) (Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return Clone(c.items[i]), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Find resolves a full id or a unique prefix of at least four characters.
func (c *Collection) Find(idOrPrefix string) (Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(idOrPrefix); i >= 0 {
		return Clone(c.items[i]), nil
	}
	if len(idOrPrefix) < minPrefixLen {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}

	var match Item
	for _, it := range c.items {
		if strings.HasPrefix(it.ItemID(), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, idOrPrefix)
			}
			match = it
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return Clone(match), nil
}

// Add appends it and persists the collection. On a save failure the
// collection is left as it was.
func (c *Collection) Add(ctx context.Context, it Item) error {
	c.mu.Lock()
	if c.indexOf(it.ItemID()) >= 0 {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDuplicateID, it.ItemID())
	}

	c.items = append(c.items, Clone(it))
	if err := c.store.Save(ctx, c.items); err != nil {
		c.items = c.items[:len(c.items)-1]
		c.mu.Unlock()
		return fmt.Errorf("failed to save items: %w", err)
	}
	hooks := c.hooks()
	c.mu.Unlock()

	runHooks(hooks)
	return nil
}

// Delete removes the item with the given id, persists, and returns it.
func (c *Collection) Delete(ctx context.Context, id string) (Item, error) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	removed := c.items[i]
	next := make([]Item, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	next = append(next, c.items[i+1:]...)

	if err := c.store.Save(ctx, next); err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("failed to save items: %w", err)
	}
	c.items = next
	hooks := c.hooks()
	c.mu.Unlock()

	runHooks(hooks)
	return Clone(removed), nil
}

// MarkAlarmSent flips AlarmSent on the reminders named by ids, merging by
// id against the current state: ids no longer present, non-reminders and
// reminders already marked are skipped. It returns copies of the reminders
// it flipped, in collection order, and saves once when any changed.
//
// A save failure is returned alongside the claimed reminders; the
// in-memory flags stay set so no reminder is notified twice.
func (c *Collection) MarkAlarmSent(ctx context.Context, ids []string) ([]*Reminder, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var claimed []*Reminder
	for i, it := range c.items {
		if !want[it.ItemID()] {
			continue
		}
		r, ok := it.(*Reminder)
		if !ok || r.AlarmSent || !r.AlarmEligible() {
			continue
		}
		updated := r.withAlarmSent()
		c.items[i] = updated
		cp := *updated
		claimed = append(claimed, &cp)
	}

	if len(claimed) == 0 {
		return nil, nil
	}

	if err := c.store.Save(ctx, c.items); err != nil {
		return claimed, fmt.Errorf("failed to save items: %w", err)
	}
	log.Printf("[store] Saved %d item(s), %d alarm(s) marked sent", len(c.items), len(claimed))
	return claimed, nil
}

func (c *Collection) indexOf(id string) int {
	for i, it := range c.items {
		if it.ItemID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection) hooks() []func() {
	return append([]func(){}, c.onChange...)
}

func runHooks(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}
