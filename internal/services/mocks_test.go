package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"volunteermatch/internal/domain"
)

type mockEventRepository struct {
	events    map[string]*domain.Event
	bySkills  []*domain.Event
	upcoming  []*domain.Event
	err       error
	skillCall int
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) ListBySkills(ctx context.Context, skills []string) ([]*domain.Event, error) {
	m.skillCall++
	if m.err != nil {
		return nil, m.err
	}
	return m.bySkills, nil
}

func (m *mockEventRepository) ListUpcomingPublished(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.upcoming, nil
}

type mockVolunteerRepository struct {
	volunteers map[string]*domain.Volunteer
	bySkills   []*domain.Volunteer
	err        error
}

func (m *mockVolunteerRepository) GetByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.volunteers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (m *mockVolunteerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Volunteer, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, v := range m.volunteers {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockVolunteerRepository) ListBySkills(ctx context.Context, skills []string) ([]*domain.Volunteer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.bySkills, nil
}

// mockMatchRepository keeps matches in memory and enforces the event/volunteer
// uniqueness the way the database constraint does.
type mockMatchRepository struct {
	mu        sync.Mutex
	matches   map[string]*domain.Match
	events    map[string]*domain.Event
	seq       int
	err       error
	updateErr error
	// skipLookup makes GetByEventAndVolunteer report not found, simulating a
	// concurrent insert that the pre-check did not see.
	skipLookup bool
}

func newMockMatchRepository(events map[string]*domain.Event) *mockMatchRepository {
	return &mockMatchRepository{matches: map[string]*domain.Match{}, events: events}
}

func (m *mockMatchRepository) put(match *domain.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if match.ID == "" {
		m.seq++
		match.ID = fmt.Sprintf("m%d", m.seq)
	}
	m.matches[match.ID] = match
}

func (m *mockMatchRepository) findPair(eventID, volunteerID string) *domain.Match {
	for _, match := range m.matches {
		if match.EventID == eventID && match.VolunteerID == volunteerID {
			return match
		}
	}
	return nil
}

func (m *mockMatchRepository) withEvent(match *domain.Match) *domain.MatchWithEvent {
	return &domain.MatchWithEvent{Match: match, Event: m.events[match.EventID]}
}

func (m *mockMatchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	match, ok := m.matches[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *match
	return &cp, nil
}

func (m *mockMatchRepository) GetByEventAndVolunteer(ctx context.Context, eventID, volunteerID string) (*domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.skipLookup {
		return nil, domain.ErrNotFound
	}
	if match := m.findPair(eventID, volunteerID); match != nil {
		return match, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockMatchRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Match{}
	for _, match := range m.matches {
		if match.EventID == eventID {
			out = append(out, match)
		}
	}
	return out, nil
}

func (m *mockMatchRepository) ListByVolunteerID(ctx context.Context, volunteerID string) ([]*domain.MatchWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.MatchWithEvent{}
	for _, match := range m.matches {
		if match.VolunteerID == volunteerID {
			out = append(out, m.withEvent(match))
		}
	}
	return out, nil
}

func (m *mockMatchRepository) ListByVolunteerIDAndStatus(ctx context.Context, volunteerID string, status domain.MatchStatus) ([]*domain.MatchWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.MatchWithEvent{}
	for _, match := range m.matches {
		if match.VolunteerID == volunteerID && match.Status == status {
			out = append(out, m.withEvent(match))
		}
	}
	return out, nil
}

func (m *mockMatchRepository) ListAll(ctx context.Context) ([]*domain.MatchWithEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.MatchWithEvent{}
	for _, match := range m.matches {
		out = append(out, m.withEvent(match))
	}
	return out, nil
}

func (m *mockMatchRepository) Create(ctx context.Context, match *domain.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.findPair(match.EventID, match.VolunteerID) != nil {
		return domain.ErrDuplicateMatch
	}
	m.seq++
	match.ID = fmt.Sprintf("m%d", m.seq)
	m.matches[match.ID] = match
	return nil
}

func (m *mockMatchRepository) CreateMany(ctx context.Context, matches []*domain.Match) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	inserted := 0
	for _, match := range matches {
		if m.findPair(match.EventID, match.VolunteerID) != nil {
			continue
		}
		m.seq++
		match.ID = fmt.Sprintf("m%d", m.seq)
		m.matches[match.ID] = match
		inserted++
	}
	return inserted, nil
}

func (m *mockMatchRepository) Update(ctx context.Context, id string, update domain.MatchUpdate) (*domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	match, ok := m.matches[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.Status != nil {
		match.Status = *update.Status
	}
	if update.Notified != nil {
		match.Notified = *update.Notified
	}
	if update.NotifiedAt != nil {
		t := *update.NotifiedAt
		match.NotifiedAt = &t
	}
	cp := *match
	return &cp, nil
}

type mockNotifier struct {
	calls []string
	err   error
}

func (m *mockNotifier) SendEventInvitation(ctx context.Context, volunteer *domain.Volunteer, event *domain.Event, matchID string) error {
	m.calls = append(m.calls, matchID)
	return m.err
}

var (
	adminRequester = &domain.Requester{ID: "admin-user", Role: domain.RoleAdmin}
	aliceRequester = &domain.Requester{ID: "alice-user", Role: domain.RoleVolunteer}
	bobRequester   = &domain.Requester{ID: "bob-user", Role: domain.RoleVolunteer}
)

func intPtr(v int) *int { return &v }
