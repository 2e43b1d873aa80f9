package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
	"github.com/translationdesk/platform-go/repositories"
	"github.com/translationdesk/platform-go/translator"
	"github.com/translationdesk/platform-go/websocket"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

// In-memory repository fakes. They keep just enough behavior for the
// services under test: lookups by ID, seq ordering, field updates.

type fakeTicketRepo struct {
	mu       sync.Mutex
	tickets  map[string]*models.Ticket
	entries  *fakeTranslationRepo
	projects *fakeProjectRepo
}

func (r *fakeTicketRepo) Create(t *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *t
	r.tickets[t.ID] = &clone
	return nil
}

func (r *fakeTicketRepo) GetByID(id string) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tickets[id]
	if !ok {
		return nil, errs.ErrTicketNotFound
	}
	clone := *stored
	clone.Translations = r.entries.byTicket(id)
	if p, ok := r.projects.projects[clone.ProjectID]; ok {
		clone.Project = *p
	}
	return &clone, nil
}

func (r *fakeTicketRepo) Update(t *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[t.ID]; !ok {
		return errs.ErrTicketNotFound
	}
	clone := *t
	clone.Translations = nil
	r.tickets[t.ID] = &clone
	return nil
}

func (r *fakeTicketRepo) UpdateFields(id string, changes map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok {
		return errs.ErrTicketNotFound
	}
	for k, v := range changes {
		switch k {
		case "status":
			t.Status = v.(models.TicketStatus)
		case "translation_workflow":
			t.TranslationWorkflow = v.(models.Workflow)
		case "original_language":
			t.OriginalLanguage = v.(string)
		case "reassigned":
			t.Reassigned = v.(bool)
		case "agent_id":
			t.AgentID = asUintPtr(v)
		case "language_expert_id":
			t.LanguageExpertID = asUintPtr(v)
		}
	}
	return nil
}

func asUintPtr(v interface{}) *uint {
	switch val := v.(type) {
	case nil:
		return nil
	case uint:
		return &val
	case *uint:
		return val
	}
	return nil
}

func (r *fakeTicketRepo) List(filter repositories.TicketFilter) ([]models.Ticket, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Ticket
	for _, t := range r.tickets {
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, t.Status) {
			continue
		}
		clone := *t
		clone.Translations = r.entries.byTicket(t.ID)
		out = append(out, clone)
	}
	return out, int64(len(out)), nil
}

func containsStatus(statuses []models.TicketStatus, s models.TicketStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (r *fakeTicketRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tickets, id)
	return nil
}

type fakeTranslationRepo struct {
	mu      sync.Mutex
	entries map[string]*models.Translation
}

func (r *fakeTranslationRepo) Create(e *models.Translation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *e
	r.entries[e.ID] = &clone
	return nil
}

func (r *fakeTranslationRepo) GetByID(id string) (*models.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.entries[id]
	if !ok {
		return nil, errs.ErrTranslationNotFound
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeTranslationRepo) Update(e *models.Translation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.ID]; !ok {
		return errs.ErrTranslationNotFound
	}
	clone := *e
	r.entries[e.ID] = &clone
	return nil
}

func (r *fakeTranslationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func (r *fakeTranslationRepo) NextSeq(ticketID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := -1
	for _, e := range r.entries {
		if e.TicketID == ticketID && e.Seq > max {
			max = e.Seq
		}
	}
	return max + 1, nil
}

func (r *fakeTranslationRepo) ListByTicket(ticketID string) ([]models.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byTicketLocked(ticketID), nil
}

func (r *fakeTranslationRepo) byTicket(ticketID string) []models.Translation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byTicketLocked(ticketID)
}

func (r *fakeTranslationRepo) byTicketLocked(ticketID string) []models.Translation {
	var out []models.Translation
	for _, e := range r.entries {
		if e.TicketID == ticketID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

type fakeProjectRepo struct {
	projects map[uint]*models.Project
}

func (r *fakeProjectRepo) Create(p *models.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id uint) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, errs.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}
func (r *fakeProjectRepo) Update(p *models.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) ListByClient(uint) ([]models.Project, error) { return nil, nil }
func (r *fakeProjectRepo) ListActive() ([]models.Project, error)       { return nil, nil }
func (r *fakeProjectRepo) CreateClient(*models.Client) error           { return nil }
func (r *fakeProjectRepo) GetClientByID(uint) (*models.Client, error)  { return nil, nil }
func (r *fakeProjectRepo) ListClients() ([]models.Client, error)       { return nil, nil }

type fakeUserRepo struct {
	users map[uint]*models.User
}

func (r *fakeUserRepo) Create(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errs.ErrUserNotFound
}
func (r *fakeUserRepo) Update(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) ListByRole(role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role && u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakePreferenceRepo struct {
	values map[string]string
}

func prefKey(userID uint, key string) string {
	return fmt.Sprintf("%d/%s", userID, key)
}

func (r *fakePreferenceRepo) Get(userID uint, key string) (string, error) {
	return r.values[prefKey(userID, key)], nil
}
func (r *fakePreferenceRepo) Set(userID uint, key, value string) error {
	r.values[prefKey(userID, key)] = value
	return nil
}
func (r *fakePreferenceRepo) ListByUser(uint) ([]models.Preference, error) { return nil, nil }

type fakeStandardReplyRepo struct{ replies []models.StandardReply }

func (r *fakeStandardReplyRepo) Create(reply *models.StandardReply) error {
	if reply.ID == 0 {
		reply.ID = uint(len(r.replies) + 1)
	}
	r.replies = append(r.replies, *reply)
	return nil
}
func (r *fakeStandardReplyRepo) GetByID(id uint) (*models.StandardReply, error) {
	for i := range r.replies {
		if r.replies[i].ID == id {
			clone := r.replies[i]
			return &clone, nil
		}
	}
	return nil, errs.ErrReplyNotFound
}
func (r *fakeStandardReplyRepo) Update(reply *models.StandardReply) error {
	for i := range r.replies {
		if r.replies[i].ID == reply.ID {
			r.replies[i] = *reply
			return nil
		}
	}
	return errs.ErrReplyNotFound
}
func (r *fakeStandardReplyRepo) Delete(uint) error { return nil }
func (r *fakeStandardReplyRepo) ListByProject(uint) ([]models.StandardReply, error) {
	return r.replies, nil
}

type fakeRejectionCategoryRepo struct{ categories []models.RejectionCategory }

func (r *fakeRejectionCategoryRepo) Upsert(c *models.RejectionCategory) error {
	r.categories = append(r.categories, *c)
	return nil
}
func (r *fakeRejectionCategoryRepo) List() ([]models.RejectionCategory, error) {
	return r.categories, nil
}

// fakeTranslator returns a fixed translation and confidence.
type fakeTranslator struct {
	translated string
	detected   string
	confidence float64
	calls      int
}

func (t *fakeTranslator) Translate(ctx context.Context, req translator.Request) (*translator.Response, error) {
	t.calls++
	return &translator.Response{
		TranslatedText:   t.translated,
		DetectedLanguage: t.detected,
		Confidence:       t.confidence,
	}, nil
}

// fakeProducer records emitted events.
type fakeProducer struct {
	mu     sync.Mutex
	events []string
}

func (p *fakeProducer) ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *fakeProducer) has(event string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.events {
		if e == event {
			return true
		}
	}
	return false
}

// fakeArchiver records archived ticket IDs.
type fakeArchiver struct {
	mu       sync.Mutex
	archived []string
}

func (a *fakeArchiver) ArchiveTicket(ctx context.Context, t *models.Ticket) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.archived = append(a.archived, t.ID)
	return nil
}

type fixture struct {
	deps     Deps
	tickets  *fakeTicketRepo
	entries  *fakeTranslationRepo
	projects *fakeProjectRepo
	users    *fakeUserRepo
	prefs    *fakePreferenceRepo
	mt       *fakeTranslator
	producer *fakeProducer
	archiver *fakeArchiver
	hub      *websocket.Hub
}

func newFixture() *fixture {
	entries := &fakeTranslationRepo{entries: map[string]*models.Translation{}}
	projects := &fakeProjectRepo{projects: map[uint]*models.Project{}}
	f := &fixture{
		entries:  entries,
		tickets:  &fakeTicketRepo{tickets: map[string]*models.Ticket{}, entries: entries, projects: projects},
		projects: projects,
		users:    &fakeUserRepo{users: map[uint]*models.User{}},
		prefs:    &fakePreferenceRepo{values: map[string]string{}},
		mt:       &fakeTranslator{translated: "translated", confidence: 0.5},
		producer: &fakeProducer{},
		archiver: &fakeArchiver{},
		hub:      websocket.NewHub(),
	}
	f.deps = Deps{
		Repos: &repositories.Repos{
			Ticket:            f.tickets,
			Translation:       f.entries,
			Project:           f.projects,
			User:              f.users,
			StandardReply:     &fakeStandardReplyRepo{},
			RejectionCategory: &fakeRejectionCategoryRepo{},
			Preference:        f.prefs,
		},
		Hub:        f.hub,
		Producer:   f.producer,
		Translator: f.mt,
		Archiver:   f.archiver,
	}
	return f
}

func (f *fixture) addProject(id uint, mutate func(*models.Project)) *models.Project {
	p := &models.Project{
		Workflows:           models.JSONStringList([]string{"supervised", "unsupervised"}),
		ConfidenceThreshold: 0.9,
	}
	p.ID = id
	if mutate != nil {
		mutate(p)
	}
	f.projects.projects[id] = p
	return p
}

func (f *fixture) addTicket(id string, mutate func(*models.Ticket)) *models.Ticket {
	agentID := uint(10)
	t := &models.Ticket{
		ID:                  id,
		ClientID:            1,
		ProjectID:           1,
		Status:              models.TicketOpen,
		AgentID:             &agentID,
		TranslationWorkflow: models.WorkflowSupervised,
	}
	if mutate != nil {
		mutate(t)
	}
	f.tickets.tickets[id] = t
	return t
}

func (f *fixture) addEntry(e models.Translation) {
	clone := e
	f.entries.entries[e.ID] = &clone
}
