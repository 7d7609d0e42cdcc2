package registry

import "github.com/Makepad-fr/dropboard/internal/model"

// Registry holds the ordered item list for one session.
// Order is insertion / most-recently-moved; ids are unique.
// Not safe for concurrent use; the board mutates it from its update loop only.
type Registry struct {
	items []model.Item
}

// DefaultSeed is the board a fresh session starts with.
func DefaultSeed() []model.Item {
	return []model.Item{
		{ID: "item1", Text: "item1", Status: model.StatusToday},
		{ID: "item2", Text: "item2", Status: model.StatusTomorrow},
		{ID: "item3", Text: "item3", Status: model.StatusToday},
	}
}

// New seeds a registry. Seed items go through the same filter-then-append
// as Move, so a repeated id keeps only its last occurrence.
func New(seed []model.Item) *Registry {
	r := &Registry{items: make([]model.Item, 0, len(seed))}
	for _, it := range seed {
		r.Move(it, it.Status)
	}
	return r
}

// Items returns the current list. The slice is a copy.
func (r *Registry) Items() []model.Item {
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Move drops any item with item.ID and appends item at status to the end.
func (r *Registry) Move(item model.Item, status string) {
	kept := r.items[:0]
	for _, it := range r.items {
		if it.ID != item.ID {
			kept = append(kept, it)
		}
	}
	r.items = append(kept, item.WithStatus(status))
}

// ByStatus returns the items at status, in list order.
func (r *Registry) ByStatus(status string) []model.Item {
	var out []model.Item
	for _, it := range r.items {
		if it.Status == status {
			out = append(out, it)
		}
	}
	return out
}

func (r *Registry) Find(id string) (model.Item, bool) {
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

func (r *Registry) Len() int { return len(r.items) }
