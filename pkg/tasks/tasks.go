package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeager/snap-l10n/pkg/i18n"
)

// TaskFunc is the function a task runs. It must return promptly once the
// context is cancelled, because the next task waits for it.
type TaskFunc func(ctx context.Context)

type TaskManager struct {
	currentTask  *Task
	waitingMutex sync.Mutex
	taskIDMutex  sync.Mutex
	Log          *logrus.Entry
	Tr           *i18n.TranslationSet
	newTaskID    int
}

type Task struct {
	cancel        context.CancelFunc
	notifyStopped chan struct{}
	Log           *logrus.Entry
}

func NewTaskManager(log *logrus.Entry, translationSet *i18n.TranslationSet) *TaskManager {
	return &TaskManager{Log: log, Tr: translationSet}
}

// Close closes the task manager, killing whatever task may currently be running
func (t *TaskManager) Close() {
	if t.currentTask == nil {
		return
	}

	c := make(chan struct{}, 1)

	go func() {
		t.currentTask.Stop()
		c <- struct{}{}
	}()

	select {
	case <-c:
		return
	case <-time.After(3 * time.Second):
		fmt.Println(t.Tr.CannotKillChildError)
	}
}

// NewTask cancels the currently running task (if any), waits for it to
// return, and then runs f in its place. If several tasks are queued up in
// quick succession only the most recent one actually runs.
func (t *TaskManager) NewTask(f TaskFunc) error {
	go func() {
		t.taskIDMutex.Lock()
		t.newTaskID++
		taskID := t.newTaskID
		t.taskIDMutex.Unlock()

		t.waitingMutex.Lock()
		defer t.waitingMutex.Unlock()
		if taskID < t.newTaskID {
			return
		}

		if t.currentTask != nil {
			t.Log.Info("asking task to stop")
			t.currentTask.Stop()
			t.Log.Info("task stopped")
		}

		ctx, cancel := context.WithCancel(context.Background())
		notifyStopped := make(chan struct{})

		t.currentTask = &Task{
			cancel:        cancel,
			notifyStopped: notifyStopped,
			Log:           t.Log,
		}

		go func() {
			f(ctx)
			t.Log.Info("returned from function, closing notifyStopped")
			close(notifyStopped)
		}()
	}()

	return nil
}

// Stop cancels the task's context and blocks until the task has returned
func (t *Task) Stop() {
	t.cancel()
	t.Log.Info("cancelled task context, waiting for it to return")
	<-t.notifyStopped
	t.Log.Info("task returned")
}
