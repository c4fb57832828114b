package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const taskTimeout = 15 * time.Minute

// Scheduler starts a fresh task on every tick of a cron schedule. A tick that fires
// while the previous task is still running is skipped.
type Scheduler struct {
	cron    *cron.Cron
	newTask func() TaskInterface
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewScheduler(schedule string, newTask func() TaskInterface) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := cronLogger{}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		newTask: newTask,
		ctx:     ctx,
		cancel:  cancel,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started", "next_run", s.nextRun())
}

// Stop cancels a running task and waits for it to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	s.executeTask(s.newTask())
}

func (s *Scheduler) executeTask(task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, taskTimeout)
	defer cancel()

	if err := task.Execute(taskCtx); err != nil {
		slog.Error("Task execution failed", "type", string(task.GetType()), "id", task.GetID(), "duration", task.GetDuration(), "error", err)
	}
}

func (s *Scheduler) nextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// cronLogger routes cron's internal messages through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("Cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("Cron: "+msg, append(keysAndValues, "error", err)...)
}
