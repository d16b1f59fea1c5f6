package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

// Task описывает периодическую фоновую задачу.
type Task interface {
	// TTL возвращает интервал между запусками.
	TTL() time.Duration

	// Do выполняет одну итерацию задачи.
	Do(context.Context) error

	// Info возвращает имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker гоняет набор фоновых задач по их интервалам.
type Worker struct {
	log   workerLogger
	tasks []Task
}

// New прогревает задачи и запускает их периодическое выполнение.
//
// Каждая задача сначала выполняется синхронно один раз: ошибки и паники
// инициализации возвращаются сразу, и Worker в этом случае не создается.
// После прогрева задачи крутятся в фоне до отмены ctx.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{log: log, tasks: tasks}
	if len(tasks) == 0 {
		return w, nil
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("initializing task", logger.NewField("task", task.Info()))
			return task.Do(warmupCtx)
		})
	}
	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("warm up tasks: %w", err)
	}

	for _, task := range tasks {
		go w.loop(ctx, task)
	}
	return w, nil
}

func (w *Worker) loop(ctx context.Context, task Task) {
	interval := task.TTL()
	if interval <= 0 {
		w.log.Warn("non-positive interval, task will not be scheduled",
			logger.NewField("task", task.Info()),
			logger.NewField("interval", interval),
		)
		return
	}
	w.log.Info("scheduling task",
		logger.NewField("task", task.Info()),
		logger.NewField("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
