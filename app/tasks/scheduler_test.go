package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingTask struct {
	Task
	started chan struct{}
	release chan struct{}
	runs    *atomic.Int32
	err     error
}

func (t *blockingTask) Execute(ctx context.Context) error {
	t.runs.Add(1)
	if t.started != nil {
		close(t.started)
	}
	if t.release != nil {
		select {
		case <-t.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return t.err
}

func TestNewSchedulerInvalidSchedule(t *testing.T) {
	_, err := NewScheduler("not a schedule", func() TaskInterface { return nil })
	assert.Error(t, err)
}

func TestSchedulerSkipsOverlappingRuns(t *testing.T) {
	var runs atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	first := true
	scheduler, err := NewScheduler("@hourly", func() TaskInterface {
		task := &blockingTask{Task: NewTask(TaskTypeIngest), runs: &runs}
		if first {
			first = false
			task.started = started
			task.release = release
		}
		return task
	})
	require.NoError(t, err)
	defer scheduler.Stop()

	entries := scheduler.cron.Entries()
	require.Len(t, entries, 1)
	job := entries[0].WrappedJob

	done := make(chan struct{})
	go func() {
		job.Run()
		close(done)
	}()
	<-started

	// The first run is still in progress, so this tick is dropped
	job.Run()
	assert.Equal(t, int32(1), runs.Load())

	close(release)
	<-done

	job.Run()
	assert.Equal(t, int32(2), runs.Load())
}

func TestSchedulerExecuteTaskToleratesFailure(t *testing.T) {
	var runs atomic.Int32
	scheduler, err := NewScheduler("@hourly", func() TaskInterface { return nil })
	require.NoError(t, err)
	defer scheduler.Stop()

	task := &blockingTask{Task: NewTask(TaskTypeIngest), runs: &runs, err: errors.New("boom")}
	scheduler.executeTask(task)

	assert.Equal(t, int32(1), runs.Load())
	assert.NotNil(t, task.StartedAt)
}

func TestSchedulerStartStop(t *testing.T) {
	scheduler, err := NewScheduler("@every 1h", func() TaskInterface { return nil })
	require.NoError(t, err)

	scheduler.Start()
	next := scheduler.nextRun()
	assert.WithinDuration(t, time.Now().Add(time.Hour), next, time.Minute)

	scheduler.Stop()
}
