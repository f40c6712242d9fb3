package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type deferredJob struct {
	job        *gocron.Job
	generation uint64
}

// DeferredTasks agenda execuções únicas identificadas por chave.
// Reagendar uma chave substitui a tarefa anterior.
type DeferredTasks struct {
	scheduler *gocron.Scheduler
	mu        sync.Mutex
	jobs      map[string]deferredJob
	next      uint64
}

func NewDeferredTasks() *DeferredTasks {
	scheduler := gocron.NewScheduler(time.Local)
	scheduler.StartAsync()

	return &DeferredTasks{
		scheduler: scheduler,
		jobs:      make(map[string]deferredJob),
	}
}

// Schedule executa fn uma única vez depois de delay
func (d *DeferredTasks) Schedule(key string, delay time.Duration, fn func()) error {
	if delay <= 0 {
		return fmt.Errorf("atraso inválido para a tarefa %s: %s", key, delay)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if previous, ok := d.jobs[key]; ok {
		d.scheduler.RemoveByReference(previous.job)
		delete(d.jobs, key)
	}

	d.next++
	generation := d.next

	job, err := d.scheduler.Every(delay).WaitForSchedule().LimitRunsTo(1).Tag(key).Do(func() {
		if !d.claim(key, generation) {
			return
		}
		fn()
	})
	if err != nil {
		return err
	}

	d.jobs[key] = deferredJob{job: job, generation: generation}

	logrus.WithFields(logrus.Fields{
		"task":  key,
		"delay": delay.String(),
	}).Debug("Tarefa adiada agendada")

	return nil
}

// claim remove a tarefa do registro. Retorna false se ela foi cancelada ou substituída.
func (d *DeferredTasks) claim(key string, generation uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.jobs[key]
	if !ok || current.generation != generation {
		return false
	}
	delete(d.jobs, key)
	d.scheduler.RemoveByReference(current.job)
	return true
}

// Cancel impede a execução da tarefa. Retorna false se não havia tarefa pendente.
func (d *DeferredTasks) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.jobs[key]
	if !ok {
		return false
	}
	delete(d.jobs, key)
	d.scheduler.RemoveByReference(current.job)

	logrus.WithField("task", key).Debug("Tarefa adiada cancelada")
	return true
}

func (d *DeferredTasks) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.jobs)
}

// Stop descarta as tarefas pendentes e para o agendador
func (d *DeferredTasks) Stop() {
	d.mu.Lock()
	d.jobs = make(map[string]deferredJob)
	d.mu.Unlock()

	d.scheduler.Stop()
}
