package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrPoolStopped = errors.New("worker pool stopped")
	ErrQueueFull   = errors.New("worker queue full")
)

// Task 背景工作；ctx 在 Stop 後會被取消
type Task func(ctx context.Context)

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task) error
	// TrySubmit 不等待；佇列已滿時回傳 ErrQueueFull
	TrySubmit(Task) error
	Stop()
}

// NewPool creates a pool with n workers and a queue of the same size.
// n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pool{jobs: make(chan Task, n), ctx: ctx, cancel: cancel}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("worker task panicked", zap.Any("panic", r))
		}
	}()
	job(p.ctx)
}

func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	p.jobs <- t
	return nil
}

func (p *pool) TrySubmit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.jobs <- t:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop 等待已排入的工作完成後結束所有 worker
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}
