package services

import (
	"sync"
)

// Session is the single live quote being edited. Items, title and customer
// name start from the selected category's template and evolve independently
// of it. The zero value is the idle state (no category chosen).
type Session struct {
	Category     string
	ServiceTitle string
	CustomerName string
	Items        []LineItem
	FooterNotes  []string
	ShowTotal    bool
}

// Total derives the grand total from the current item list.
func (s *Session) Total() float64 {
	return ComputeTotal(s.Items)
}

// Store owns the one live session. Handlers run on separate goroutines, so
// access is serialized with a mutex; every item mutation swaps in a whole
// new list, so a reader never observes a torn collection.
type Store struct {
	mu        sync.Mutex
	session   Session
	editing   bool
	exporting bool
}

// NewStore returns an idle store. ShowTotal starts true, the documented
// default for the unset flag.
func NewStore() *Store {
	return &Store{session: Session{ShowTotal: true}}
}

// Editing reports whether a category has been selected.
func (st *Store) Editing() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.editing
}

// Select performs the Idle→Editing transition: it loads the category's
// template, deep-copies the item prototypes with fresh ids and resets the
// customer name. The template itself is never referenced afterwards.
func (st *Store) Select(category string) error {
	tpl, err := GetTemplate(category)
	if err != nil {
		return err
	}

	items := make([]LineItem, len(tpl.Items))
	for i, proto := range tpl.Items {
		items[i] = proto
		items[i].ID = NewLineItemID()
	}
	notes := make([]string, len(tpl.FooterNotes))
	copy(notes, tpl.FooterNotes)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.session = Session{
		Category:     category,
		ServiceTitle: tpl.Title,
		Items:        items,
		FooterNotes:  notes,
		ShowTotal:    tpl.ShowTotalValue(),
	}
	st.editing = true
	return nil
}

// Back performs the Editing→Idle transition, discarding the entire session.
// Data loss here is expected behavior; there is no confirmation or autosave.
func (st *Store) Back() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session = Session{ShowTotal: true}
	st.editing = false
}

// Snapshot returns a copy of the current session safe to render from.
func (st *Store) Snapshot() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := st.session
	s.Items = make([]LineItem, len(st.session.Items))
	copy(s.Items, st.session.Items)
	s.FooterNotes = make([]string, len(st.session.FooterNotes))
	copy(s.FooterNotes, st.session.FooterNotes)
	return s
}

// SetTitle updates the editable service title.
func (st *Store) SetTitle(title string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session.ServiceTitle = title
}

// SetCustomerName updates the optional customer name.
func (st *Store) SetCustomerName(name string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session.CustomerName = name
}

// AddItem appends a fresh row to the session list.
func (st *Store) AddItem() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session.Items = AddItem(st.session.Items)
}

// RemoveItem drops the row with the given id, if present.
func (st *Store) RemoveItem(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session.Items = RemoveItem(st.session.Items, id)
}

// UpdateItem changes one field of the row with the given id.
func (st *Store) UpdateItem(id, field, raw string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session.Items = UpdateItem(st.session.Items, id, field, raw)
}

// TryBeginExport flips the exporting flag on. It returns false when an
// export is already in flight; the caller must then ignore the trigger.
// This is a re-entrancy guard, not a queue.
func (st *Store) TryBeginExport() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.exporting {
		return false
	}
	st.exporting = true
	return true
}

// EndExport clears the exporting flag. Callers defer it immediately after a
// successful TryBeginExport so the flag is released on every exit path.
func (st *Store) EndExport() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.exporting = false
}

// Exporting reports whether an export is in flight.
func (st *Store) Exporting() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.exporting
}
