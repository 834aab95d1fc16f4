package app

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/quirk/pkg/state"
	"tableflip.dev/quirk/pkg/timeutil"
)

// ReminderPatch carries the fields UpdateReminder should change.
type ReminderPatch struct {
	Time          *string
	Enabled       *bool
	LastTriggered *time.Time
}

// AddReminder upserts the single reminder for a category. An existing
// reminder keeps its lastTriggered stamp.
func (s *Service) AddReminder(ctx context.Context, categoryID, clock string, enabled bool) error {
	if !timeutil.ValidClock(clock) {
		return &state.ValidationError{Field: "time", Reason: fmt.Sprintf("%q is not a HH:MM clock value", clock)}
	}

	if r := s.State.Reminder(categoryID); r != nil {
		r.Time = clock
		r.Enabled = enabled
	} else {
		s.State.Reminders = append(s.State.Reminders, &state.Reminder{
			CategoryID: categoryID,
			Time:       clock,
			Enabled:    enabled,
		})
	}
	s.save(ctx)
	return nil
}

// UpdateReminder patches a reminder. No-op when none exists for the
// category.
func (s *Service) UpdateReminder(ctx context.Context, categoryID string, patch ReminderPatch) error {
	r := s.State.Reminder(categoryID)
	if r == nil {
		return nil
	}
	if patch.Time != nil {
		if !timeutil.ValidClock(*patch.Time) {
			return &state.ValidationError{Field: "time", Reason: fmt.Sprintf("%q is not a HH:MM clock value", *patch.Time)}
		}
		r.Time = *patch.Time
	}
	if patch.Enabled != nil {
		r.Enabled = *patch.Enabled
	}
	if patch.LastTriggered != nil {
		r.LastTriggered = &state.Timestamp{Time: *patch.LastTriggered}
	}
	s.save(ctx)
	return nil
}

// ToggleReminder flips a reminder's enabled flag. The second return is
// false when no reminder exists for the category.
func (s *Service) ToggleReminder(ctx context.Context, categoryID string) (bool, bool) {
	r := s.State.Reminder(categoryID)
	if r == nil {
		return false, false
	}
	r.Enabled = !r.Enabled
	s.save(ctx)
	return r.Enabled, true
}

// DeleteReminder removes the reminder for a category. No-op when absent.
func (s *Service) DeleteReminder(ctx context.Context, categoryID string) bool {
	for i, r := range s.State.Reminders {
		if r.CategoryID == categoryID {
			s.State.Reminders = append(s.State.Reminders[:i], s.State.Reminders[i+1:]...)
			s.save(ctx)
			return true
		}
	}
	return false
}

// DueReminders returns the reminders due this minute and stamps their
// lastTriggered so a second check within the minute stays quiet.
// Reminders for deleted categories are skipped.
func (s *Service) DueReminders(ctx context.Context) []*state.Reminder {
	now := s.Now()
	clock := timeutil.ClockMinute(now)

	due := make([]*state.Reminder, 0)
	for _, r := range s.State.Reminders {
		if !r.Enabled || r.Time != clock {
			continue
		}
		if s.State.Category(r.CategoryID) == nil {
			continue
		}
		if r.LastTriggered != nil && now.Sub(r.LastTriggered.Time) < time.Minute {
			continue
		}
		r.LastTriggered = &state.Timestamp{Time: now}
		due = append(due, r)
	}
	if len(due) > 0 {
		s.save(ctx)
	}
	return due
}
