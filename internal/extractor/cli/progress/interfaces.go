package progress

import "github.com/spacerocks/neofeed/internal/extractor/usecase"

// Tracker interface implementation should display progress of tasks.
type Tracker interface {
	// AddTask function should add task progress of which should be displayed.
	AddTask(name string, title string, total uint64)
	// UpdateProgress function should update progress of tracked task.
	// Total of the task may shrink if the progress reports a smaller one.
	UpdateProgress(name string, progress usecase.Progress)
	// Wait function should wait for all tracked tasks to complete or context to be canceled.
	Wait()
}
