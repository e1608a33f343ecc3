// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

// Workers runs a fixed set of workers in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws into a [Workers] aggregate.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops, in reverse order, every worker implementing [Stopper].
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}
