package templates

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/observability"
)

// Stored wraps a template with registry bookkeeping.
type Stored struct {
	layout.Template `bson:",inline"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Registry is the keyed store of user-registered templates, independent of
// the built-in preset set. Entries persist until explicitly removed or the
// registry is discarded.
//
// All methods are safe for concurrent use: the backing map is guarded by a
// read-write mutex because Register, Remove, and Get are not inherently
// atomic across concurrent mutation.
type Registry struct {
	mu    sync.RWMutex
	store Store
	items map[string]Stored
}

// NewRegistry creates a registry backed by the given store. A nil store
// keeps the registry purely in-memory. Call Load to populate from the
// store before first use.
func NewRegistry(store Store) *Registry {
	return &Registry{
		store: store,
		items: make(map[string]Stored),
	}
}

// Load populates the registry from its store, replacing the working set.
func (r *Registry) Load(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	stored, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]Stored, len(stored))
	for _, s := range stored {
		r.items[s.ID] = s
	}
	return nil
}

// Register upserts a template by id; the last write wins. A template
// without an id is assigned a fresh uuid. The template is validated before
// it is stored so malformed grids and out-of-bounds collage cells never
// enter the registry.
func (r *Registry) Register(ctx context.Context, t layout.Template) (layout.Template, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := layout.ValidateTemplate(t); err != nil {
		return layout.Template{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	s := Stored{Template: t.Clone(), CreatedAt: now, UpdatedAt: now}
	if prev, ok := r.items[t.ID]; ok {
		s.CreatedAt = prev.CreatedAt
	}

	if r.store != nil {
		if err := r.store.Save(ctx, s); err != nil {
			return layout.Template{}, err
		}
	}
	r.items[t.ID] = s

	observability.Registry().OnTemplateRegistered(ctx, t.ID)
	return t.Clone(), nil
}

// Get returns the registered template with the given id. The result is a
// copy; mutating it does not affect the registry.
func (r *Registry) Get(id string) (layout.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return layout.Template{}, false
	}
	return s.Template.Clone(), true
}

// Remove deletes a template by id, reporting whether an entry existed.
func (r *Registry) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	if r.store != nil {
		if err := r.store.Delete(ctx, id); err != nil {
			return false, err
		}
	}
	delete(r.items, id)

	observability.Registry().OnTemplateRemoved(ctx, id)
	return true, nil
}

// List returns a snapshot of all registered templates, sorted by id for
// deterministic output.
func (r *Registry) List() []layout.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]layout.Template, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s.Template.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Resolve implements [layout.TemplateResolver]: registered templates
// shadow presets with the same id, so users can override a built-in.
func (r *Registry) Resolve(id string) (layout.Template, bool) {
	if t, ok := r.Get(id); ok {
		return t, true
	}
	return Preset(id)
}

// Close closes the underlying store, if any.
func (r *Registry) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

var _ layout.TemplateResolver = (*Registry)(nil)
