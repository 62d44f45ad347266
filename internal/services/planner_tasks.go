package services

import (
	"context"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/usecase"
)

// ListTasks returns the filtered tasks and the completion percentage over all tasks.
func (s *plannerService) ListTasks(filter domain.TaskFilter) ([]domain.Task, int, error) {
	var (
		out      []domain.Task
		progress int
	)
	err := s.withSession(func(domain.Session) error {
		all := s.store.Tasks()
		out = usecase.FilterTasks(all, filter)
		progress = usecase.TaskProgress(all)
		return nil
	})
	return out, progress, err
}

func (s *plannerService) AddTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	err := s.withSession(func(sess domain.Session) error {
		if t.ID == "" {
			t.ID = s.newID()
		}
		t.EventID = sess.EventID
		if t.Priority == "" {
			t.Priority = domain.PriorityMedium
		}
		if err := t.Validate(); err != nil {
			return err
		}
		if err := s.store.AddTask(t); err != nil {
			return err
		}
		added := t
		s.syncer.dispatch(ctx, "addTask", sess.EventID, t.ID, func(ctx context.Context) error {
			return s.remote.AddTask(ctx, added)
		})
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// UpdateTask applies patch and re-validates the merged task.
func (s *plannerService) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	return s.mutateTask(ctx, id, func(t *domain.Task) error {
		patch.Apply(t)
		return t.Validate()
	})
}

func (s *plannerService) ToggleTask(ctx context.Context, id string) (domain.Task, error) {
	return s.mutateTask(ctx, id, func(t *domain.Task) error {
		t.Completed = !t.Completed
		return nil
	})
}

func (s *plannerService) mutateTask(ctx context.Context, id string, fn func(*domain.Task) error) (domain.Task, error) {
	var updated domain.Task
	err := s.withSession(func(sess domain.Session) (err error) {
		updated, err = s.store.UpdateTask(id, fn)
		if err != nil {
			return err
		}
		rec := updated
		s.syncer.dispatch(ctx, "updateTask", sess.EventID, id, func(ctx context.Context) error {
			return s.remote.UpdateTask(ctx, rec)
		})
		return nil
	})
	return updated, err
}

func (s *plannerService) DeleteTask(ctx context.Context, id string) error {
	return s.withSession(func(sess domain.Session) error {
		if err := s.store.RemoveTask(id); err != nil {
			return err
		}
		s.syncer.dispatch(ctx, "deleteTask", sess.EventID, id, func(ctx context.Context) error {
			return s.remote.DeleteTask(ctx, id, sess.EventID)
		})
		return nil
	})
}
