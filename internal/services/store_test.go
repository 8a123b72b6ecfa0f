package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

type txKey struct{}

// memTx is one in-memory transaction: the event rows it locked and the undo
// steps that roll its writes back.
type memTx struct {
	locked map[string]*sync.Mutex
	undo   []func()
}

// memStore keeps events, registrations and users in memory. Transactions run
// concurrently; GetByIDForUpdate takes a per-event lock held until the
// transaction ends, like SELECT ... FOR UPDATE.
type memStore struct {
	mu sync.Mutex

	events   map[string]*domain.Event
	regs     map[string]*domain.Registration
	users    map[string]*domain.User
	rowLocks map[string]*sync.Mutex

	// unlockedWrites lists registration reads and writes made inside a
	// transaction that did not hold the event row lock.
	unlockedWrites []string

	countErr           error
	afterCount         func()
	onUpdatePlacesLeft func()
}

func newMemStore() *memStore {
	return &memStore{
		events:   make(map[string]*domain.Event),
		regs:     make(map[string]*domain.Registration),
		users:    make(map[string]*domain.User),
		rowLocks: make(map[string]*sync.Mutex),
	}
}

func regKey(userID, eventID string) string { return userID + "|" + eventID }

func (s *memStore) addUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = &domain.User{ID: id, Email: id + "@example.com", Name: id}
}

func (s *memStore) addEvent(id string, maxParticipants int) *domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev := domain.NewEvent("event "+id, "description", "Berlin", "tech", time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC), maxParticipants)
	ev.ID = id
	s.events[id] = ev
	cp := *ev
	return &cp
}

func (s *memStore) event(id string) *domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return nil
	}
	cp := *ev
	return &cp
}

func (s *memStore) occupancy(eventID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupancyLocked(eventID)
}

func (s *memStore) occupancyLocked(eventID string) int {
	n := 0
	for _, r := range s.regs {
		if r.EventID == eventID {
			n++
		}
	}
	return n
}

func (s *memStore) hasRegistration(userID, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.regs[regKey(userID, eventID)]
	return ok
}

func (s *memStore) unlocked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.unlockedWrites...)
}

func txFrom(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txKey{}).(*memTx)
	return tx
}

// record registers an undo step for the transaction in ctx. Callers hold s.mu.
func (s *memStore) record(ctx context.Context, undo func()) {
	if tx := txFrom(ctx); tx != nil {
		tx.undo = append(tx.undo, undo)
	}
}

// checkLocked notes op when it runs in a transaction that has not locked eventID.
// Callers hold s.mu.
func (s *memStore) checkLocked(ctx context.Context, op, eventID string) {
	if tx := txFrom(ctx); tx != nil && tx.locked[eventID] == nil {
		s.unlockedWrites = append(s.unlockedWrites, op+" "+eventID)
	}
}

func (s *memStore) rowLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[id] = l
	}
	return l
}

// WithTx implements domain.Transactor.
func (s *memStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memTx{locked: make(map[string]*sync.Mutex)}
	defer func() {
		for _, l := range tx.locked {
			l.Unlock()
		}
	}()

	err := fn(context.WithValue(ctx, txKey{}, tx))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.mu.Lock()
		for i := len(tx.undo) - 1; i >= 0; i-- {
			tx.undo[i]()
		}
		s.mu.Unlock()
	}
	return err
}

type memEventRepo struct{ s *memStore }

func (r memEventRepo) Create(ctx context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.events[e.ID] = &cp
	r.s.record(ctx, func() { delete(r.s.events, e.ID) })
	return nil
}

func (r memEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if ev := r.s.event(id); ev != nil {
		return ev, nil
	}
	return nil, domain.NewNotFound(domain.KindEvent, id)
}

func (r memEventRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	if tx := txFrom(ctx); tx != nil && tx.locked[id] == nil {
		l := r.s.rowLock(id)
		l.Lock()
		tx.locked[id] = l
	}
	return r.GetByID(ctx, id)
}

func (r memEventRepo) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ev := range r.s.events {
		if ev.Name == name {
			cp := *ev
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound(domain.KindEvent, name)
}

func (r memEventRepo) sorted() []*domain.Event {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Event, 0, len(r.s.events))
	for _, ev := range r.s.events {
		cp := *ev
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r memEventRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	all := r.sorted()
	start := min(params.Offset(), len(all))
	end := min(start+params.PageSize, len(all))
	return all[start:end], len(all), nil
}

func (r memEventRepo) ListFiltered(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range r.sorted() {
		if (f.Category == "" || ev.Category == f.Category) && (f.Place == "" || ev.Place == f.Place) && (f.Name == "" || ev.Name == f.Name) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r memEventRepo) Update(ctx context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.events[e.ID]
	if !ok {
		return domain.NewNotFound(domain.KindEvent, e.ID)
	}
	r.s.checkLocked(ctx, "update event", e.ID)
	cp := *e
	r.s.events[e.ID] = &cp
	r.s.record(ctx, func() { r.s.events[e.ID] = prev })
	return nil
}

func (r memEventRepo) UpdatePlacesLeft(ctx context.Context, id string, placesLeft int) error {
	r.s.mu.Lock()
	ev, ok := r.s.events[id]
	if ok {
		r.s.checkLocked(ctx, "update places left", id)
		prev := ev.PlacesLeft
		ev.PlacesLeft = placesLeft
		r.s.record(ctx, func() { ev.PlacesLeft = prev })
	}
	hook := r.s.onUpdatePlacesLeft
	r.s.mu.Unlock()
	if !ok {
		return domain.NewNotFound(domain.KindEvent, id)
	}
	if hook != nil {
		hook()
	}
	return nil
}

func (r memEventRepo) UpdatePicture(ctx context.Context, id, picture string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ev, ok := r.s.events[id]
	if !ok {
		return domain.NewNotFound(domain.KindEvent, id)
	}
	prev := ev.Picture
	ev.Picture = &picture
	r.s.record(ctx, func() { ev.Picture = prev })
	return nil
}

func (r memEventRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.events[id]
	if !ok {
		return domain.NewNotFound(domain.KindEvent, id)
	}
	r.s.checkLocked(ctx, "delete event", id)
	delete(r.s.events, id)
	r.s.record(ctx, func() { r.s.events[id] = prev })
	return nil
}

type memRegistrationRepo struct{ s *memStore }

func (r memRegistrationRepo) Insert(ctx context.Context, reg *domain.Registration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.checkLocked(ctx, "insert registration", reg.EventID)
	key := regKey(reg.UserID, reg.EventID)
	if _, ok := r.s.regs[key]; ok {
		return domain.ErrDuplicateRegistration
	}
	cp := *reg
	r.s.regs[key] = &cp
	r.s.record(ctx, func() { delete(r.s.regs, key) })
	return nil
}

func (r memRegistrationRepo) DeleteByPair(ctx context.Context, userID, eventID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.checkLocked(ctx, "delete registration", eventID)
	key := regKey(userID, eventID)
	prev, ok := r.s.regs[key]
	if !ok {
		return false, nil
	}
	delete(r.s.regs, key)
	r.s.record(ctx, func() { r.s.regs[key] = prev })
	return true, nil
}

func (r memRegistrationRepo) CountByEvent(ctx context.Context, eventID string) (int, error) {
	if r.s.countErr != nil {
		return 0, r.s.countErr
	}
	r.s.mu.Lock()
	r.s.checkLocked(ctx, "count registrations", eventID)
	n := r.s.occupancyLocked(eventID)
	hook := r.s.afterCount
	r.s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return n, nil
}

func (r memRegistrationRepo) list(match func(*domain.Registration) bool) []*domain.Registration {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*domain.Registration{}
	for _, reg := range r.s.regs {
		if match(reg) {
			cp := *reg
			out = append(out, &cp)
		}
	}
	return out
}

func (r memRegistrationRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	out := r.list(func(reg *domain.Registration) bool { return reg.UserID == userID })
	sort.Slice(out, func(i, j int) bool { return out[i].RegistrationDate.After(out[j].RegistrationDate) })
	return out, nil
}

func (r memRegistrationRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	out := r.list(func(reg *domain.Registration) bool { return reg.EventID == eventID })
	sort.Slice(out, func(i, j int) bool { return out[i].RegistrationDate.Before(out[j].RegistrationDate) })
	return out, nil
}

func (r memRegistrationRepo) DeleteByEvent(ctx context.Context, eventID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.checkLocked(ctx, "delete registrations", eventID)
	var n int64
	for k, reg := range r.s.regs {
		if reg.EventID == eventID {
			delete(r.s.regs, k)
			r.s.record(ctx, func() { r.s.regs[k] = reg })
			n++
		}
	}
	return n, nil
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.users[id]
	return ok, nil
}

func (r memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.NewNotFound(domain.KindUser, id)
	}
	cp := *u
	return &cp, nil
}

type recordingEmailService struct {
	mu        sync.Mutex
	confirmed []string
	cancelled []string
	err       error
}

func (m *recordingEmailService) SendRegistrationConfirmed(ctx context.Context, data *domain.RegistrationEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmed = append(m.confirmed, data.Email)
	return m.err
}

func (m *recordingEmailService) SendRegistrationCancelled(ctx context.Context, data *domain.RegistrationEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = append(m.cancelled, data.Email)
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// requireConsistent checks 0 <= placesLeft <= max and placesLeft == max - occupancy.
func requireConsistent(t *testing.T, s *memStore, eventID string) {
	t.Helper()
	ev := s.event(eventID)
	require.NotNil(t, ev)
	require.GreaterOrEqual(t, ev.PlacesLeft, 0)
	require.LessOrEqual(t, ev.PlacesLeft, ev.MaxParticipants)
	require.Equal(t, ev.MaxParticipants-s.occupancy(eventID), ev.PlacesLeft)
	require.Empty(t, s.unlocked(), "registration access outside the event row lock")
}
