package usecase

import "weddingplanner/internal/domain"

// FilterTasks selects tasks by completion state. Unknown filters behave like All.
func FilterTasks(tasks []domain.Task, f domain.TaskFilter) []domain.Task {
	out := []domain.Task{}
	for _, t := range tasks {
		switch f {
		case domain.TasksPending:
			if t.Completed {
				continue
			}
		case domain.TasksCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// TaskProgress returns the completed share as a whole percentage, 0 for an empty list.
func TaskProgress(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return done * 100 / len(tasks)
}
