package menu

import "fmt"

// Registry holds menus by id and resolves sibling links between them.
type Registry struct {
	order []string
	menus map[string]*Menu
}

// NewRegistry creates a registry holding the given menus.
func NewRegistry(menus ...*Menu) *Registry {
	r := &Registry{menus: make(map[string]*Menu)}
	for _, m := range menus {
		r.Add(m)
	}
	return r
}

// Add registers m, replacing any menu with the same id.
func (r *Registry) Add(m *Menu) {
	if m == nil {
		return
	}
	if _, ok := r.menus[m.ID]; !ok {
		r.order = append(r.order, m.ID)
	}
	r.menus[m.ID] = m
}

// Find locates a menu by id.
func (r *Registry) Find(id string) (*Menu, bool) {
	if id == "" {
		return nil, false
	}
	m, ok := r.menus[id]
	return m, ok
}

// IDs returns the registered ids in insertion order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Link makes next follow prev.
func (r *Registry) Link(prev, next string) error {
	p, ok := r.menus[prev]
	if !ok {
		return fmt.Errorf("link %s: unknown menu", prev)
	}
	n, ok := r.menus[next]
	if !ok {
		return fmt.Errorf("link %s: unknown menu", next)
	}
	p.Next, n.Prev = n.ID, p.ID
	return nil
}

// Chain links the menus in order. The ends stay open.
func (r *Registry) Chain(ids ...string) error {
	for i := 1; i < len(ids); i++ {
		if err := r.Link(ids[i-1], ids[i]); err != nil {
			return err
		}
	}
	return nil
}

// Ring links the menus in order and closes the loop.
func (r *Registry) Ring(ids ...string) error {
	if err := r.Chain(ids...); err != nil {
		return err
	}
	if len(ids) > 1 {
		return r.Link(ids[len(ids)-1], ids[0])
	}
	return nil
}

// Prev returns the sibling before m, if linked.
func (r *Registry) Prev(m *Menu) (*Menu, bool) {
	if m == nil {
		return nil, false
	}
	return r.Find(m.Prev)
}

// Next returns the sibling after m, if linked.
func (r *Registry) Next(m *Menu) (*Menu, bool) {
	if m == nil {
		return nil, false
	}
	return r.Find(m.Next)
}
