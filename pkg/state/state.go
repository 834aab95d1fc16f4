// Package state defines the persisted data model: categories, the event
// log, todos, reminders, and the aggregate State that owns them.
package state

import (
	"regexp"
)

// DefaultTheme is used when no theme has been chosen yet.
const DefaultTheme = "dragon-dynasty"

// Category is a named bucket of events. Count caches how many events were
// recorded for it today; the reconciler rebuilds it from the event log on
// day rollover, and increment/decrement keep it paired with the log in
// between.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Event is one recorded increment. Phrase is chosen once at creation time
// and never regenerated.
type Event struct {
	Timestamp  Timestamp `json:"timestamp"`
	CategoryID string    `json:"categoryId"`
	Phrase     string    `json:"phrase"`
}

// TodoStatus is a kanban column.
type TodoStatus string

const (
	StatusTodo       TodoStatus = "todo"
	StatusInProgress TodoStatus = "in-progress"
	StatusDone       TodoStatus = "done"
)

// TodoStatuses returns the supported statuses in board order.
func TodoStatuses() []TodoStatus {
	return []TodoStatus{StatusTodo, StatusInProgress, StatusDone}
}

// ParseTodoStatus converts raw input to a TodoStatus.
func ParseTodoStatus(raw string) (TodoStatus, error) {
	for _, s := range TodoStatuses() {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", &ValidationError{Field: "status", Reason: "must be one of todo, in-progress, done"}
}

// Todo is an independent kanban task, unrelated to categories.
type Todo struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Status    TodoStatus `json:"status"`
	CreatedAt Timestamp  `json:"createdAt"`
}

// Reminder is a per-category daily reminder. At most one exists per
// category. Time is a local "HH:MM" clock value.
type Reminder struct {
	CategoryID    string     `json:"categoryId"`
	Time          string     `json:"time"`
	Enabled       bool       `json:"enabled"`
	LastTriggered *Timestamp `json:"lastTriggered"`
}

// State is the aggregate root. It is persisted in full on every mutation
// and hydrated in full on startup.
type State struct {
	Categories    []*Category `json:"categories"`
	Theme         string      `json:"theme"`
	Events        []*Event    `json:"events"`
	LastResetDate string      `json:"lastResetDate"`
	Todos         []*Todo     `json:"todos"`
	Reminders     []*Reminder `json:"reminders"`
}

// DefaultCategories returns the seed set used on first run.
func DefaultCategories() []*Category {
	return []*Category{
		{ID: "burp", Name: "Burps"},
		{ID: "fart", Name: "Farts"},
		{ID: "bug", Name: "Bugs Introduced"},
		{ID: "coffee", Name: "Coffee Consumed"},
		{ID: "sass", Name: "Sass"},
	}
}

// New returns a fresh default State.
func New() *State {
	return &State{
		Categories: DefaultCategories(),
		Theme:      DefaultTheme,
		Events:     []*Event{},
		Todos:      []*Todo{},
		Reminders:  []*Reminder{},
	}
}

// Normalize fills fields missing from an older or partial blob so callers
// never see nil collections. An empty LastResetDate forces reconciliation.
func (s *State) Normalize() {
	if s.Categories == nil {
		s.Categories = DefaultCategories()
	}
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	if s.Events == nil {
		s.Events = []*Event{}
	}
	if s.Todos == nil {
		s.Todos = []*Todo{}
	}
	if s.Reminders == nil {
		s.Reminders = []*Reminder{}
	}
}

// Category returns the category with the given id, or nil.
func (s *State) Category(id string) *Category {
	for _, c := range s.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Todo returns the todo with the given id, or nil.
func (s *State) Todo(id string) *Todo {
	for _, t := range s.Todos {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Reminder returns the reminder for the given category id, or nil.
func (s *State) Reminder(categoryID string) *Reminder {
	for _, r := range s.Reminders {
		if r.CategoryID == categoryID {
			return r
		}
	}
	return nil
}

var categoryIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidCategoryID reports whether id matches the boundary contract:
// lowercase letters, digits, hyphen, underscore.
func ValidCategoryID(id string) bool {
	return categoryIDPattern.MatchString(id)
}
