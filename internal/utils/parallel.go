package utils

import (
	"sync"
)

// ParallelTask represents a named check or job that can run alongside others
type ParallelTask struct {
	Name string
	Run  func() error
}

// RunParallelTasks executes every task concurrently and returns each task's
// error keyed by name. A nil entry means the task succeeded.
func RunParallelTasks(tasks []ParallelTask) map[string]error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make(map[string]error, len(tasks))

	wg.Add(len(tasks))
	for _, task := range tasks {
		go func(t ParallelTask) {
			defer wg.Done()
			err := t.Run()
			mu.Lock()
			results[t.Name] = err
			mu.Unlock()
		}(task)
	}

	wg.Wait()
	return results
}
