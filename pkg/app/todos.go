package app

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/quirk/pkg/state"
)

const maxTodoLength = 200

// AddTodo creates a todo in the "todo" column. The text is trimmed and
// must be 1..200 characters.
func (s *Service) AddTodo(ctx context.Context, text string) (*state.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &state.ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if len([]rune(text)) > maxTodoLength {
		return nil, &state.ValidationError{Field: "text", Reason: "must be at most 200 characters"}
	}

	todo := &state.Todo{
		ID:        uuid.NewString(),
		Text:      text,
		Status:    state.StatusTodo,
		CreatedAt: state.Timestamp{Time: s.Now()},
	}
	s.State.Todos = append(s.State.Todos, todo)
	s.save(ctx)
	return todo, nil
}

// UpdateTodoStatus moves a todo to another column. Unknown ids are a
// no-op; an invalid status is a validation error.
func (s *Service) UpdateTodoStatus(ctx context.Context, id, status string) error {
	parsed, err := state.ParseTodoStatus(status)
	if err != nil {
		return err
	}
	todo := s.State.Todo(id)
	if todo == nil {
		return nil
	}
	todo.Status = parsed
	s.save(ctx)
	return nil
}

// DeleteTodo removes a todo. No-op when the id is unknown.
func (s *Service) DeleteTodo(ctx context.Context, id string) bool {
	for i, t := range s.State.Todos {
		if t.ID == id {
			s.State.Todos = append(s.State.Todos[:i], s.State.Todos[i+1:]...)
			s.save(ctx)
			return true
		}
	}
	return false
}
