package repository

import "hotelreserve/internal/domain"

// GuestRepository is the guest registry: append-only during a session,
// deduplicated by id on reload. Guests are never edited or removed.
type GuestRepository struct {
	byID    map[string]*domain.Guest
	ordered []*domain.Guest
	seq     *Sequence
}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{
		byID: make(map[string]*domain.Guest),
		seq:  NewSequence("G", 4),
	}
}

// Create registers a guest under a freshly generated id.
func (r *GuestRepository) Create(name, phone, email string) *domain.Guest {
	g := &domain.Guest{ID: r.seq.Next(), Name: name, Phone: phone, Email: email}
	r.byID[g.ID] = g
	r.ordered = append(r.ordered, g)
	return g
}

// GetOrCreate is the reload path: an existing id wins and the supplied
// fields are ignored; an absent id is registered as-is and the counter
// advanced past its suffix.
func (r *GuestRepository) GetOrCreate(id, name, phone, email string) *domain.Guest {
	if g, ok := r.byID[id]; ok {
		return g
	}
	g := &domain.Guest{ID: id, Name: name, Phone: phone, Email: email}
	r.byID[g.ID] = g
	r.ordered = append(r.ordered, g)
	r.seq.Observe(id)
	return g
}

func (r *GuestRepository) Lookup(id string) (*domain.Guest, bool) {
	g, ok := r.byID[id]
	return g, ok
}

func (r *GuestRepository) All() []*domain.Guest {
	out := make([]*domain.Guest, len(r.ordered))
	copy(out, r.ordered)
	return out
}
