package server

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/curol/httpcore/message"
)

// message kind pushed onto the worker queue: either a unit of work
// (Work) or a shutdown signal. Unexported to keep the two-case variant
// closed to this package.
type messageKind int

const (
	kindWork messageKind = iota
	kindShutdown
)

type poolMessage struct {
	kind   messageKind
	req    *message.Request
	stream io.WriteCloser
	log    Log
}

// synchronizedQueue is a mutex-protected FIFO paired with a condition
// variable: Push appends under the lock and signals one waiter; Pop
// acquires the lock and loops waiting on the condvar while the FIFO is
// empty. This is intentionally from-scratch and educational — it may be
// swapped 1:1 for any blocking MPMC channel.
type synchronizedQueue struct {
	mu   sync.Mutex
	cond *sync.Cond
	data []poolMessage
}

func newSynchronizedQueue() *synchronizedQueue {
	q := &synchronizedQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *synchronizedQueue) push(m poolMessage) {
	q.mu.Lock()
	q.data = append(q.data, m)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *synchronizedQueue) pop() poolMessage {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.data) == 0 {
		q.cond.Wait()
	}
	m := q.data[0]
	q.data = q.data[1:]
	return m
}

// WorkerPool is a bounded pool of N workers draining a FIFO queue of
// requests. Each worker dispatches the request against the registry and
// sends the resulting response, ignoring/logging I/O errors on send.
type WorkerPool struct {
	queue    *synchronizedQueue
	registry *Registry
	wg       sync.WaitGroup
	n        int
}

// defaultWorkerCount implements "max(1, available_parallelism / 2)
// ceilinged, falling back to 4 if parallelism is indeterminable."
// runtime.NumCPU never returns an indeterminable value in Go, but the
// fallback is kept to mirror the documented default exactly.
func defaultWorkerCount() int {
	n := runtime.NumCPU()
	if n <= 0 {
		return 4
	}
	count := (n + 1) / 2 // ceiling division by 2
	if count < 1 {
		count = 1
	}
	return count
}

// NewWorkerPool starts n workers dispatching against registry. If n <= 0,
// defaultWorkerCount() is used.
func NewWorkerPool(n int, registry *Registry) *WorkerPool {
	if n <= 0 {
		n = defaultWorkerCount()
	}
	p := &WorkerPool{
		queue:    newSynchronizedQueue(),
		registry: registry,
		n:        n,
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.runWorker()
	}
	return p
}

func (p *WorkerPool) runWorker() {
	defer p.wg.Done()
	for {
		msg := p.queue.pop()
		switch msg.kind {
		case kindWork:
			p.handle(msg.req, msg.stream, msg.log)
		case kindShutdown:
			return
		}
	}
}

func (p *WorkerPool) handle(req *message.Request, stream io.WriteCloser, l Log) {
	defer func() {
		if r := recover(); r != nil {
			// A handler panic is out of spec; isolate it at the worker
			// boundary and emit a 500 rather than taking the whole pool
			// down.
			resp, err := message.ErrorResponse(req.Version(), stream, message.StatusInternalServerError, "internal server error")
			if err == nil {
				_ = resp.Send()
			}
			if l != nil {
				l.Fatal(fmt.Errorf("handler panic: %v", r))
			}
		}
	}()

	resp := DispatchOrError(p.registry, req, req.Version(), stream)
	if resp == nil {
		return
	}
	if err := resp.Send(); err != nil && l != nil {
		l.Fatal(err)
	}
	if l != nil {
		l.Status(req, resp)
	}
}

// Enqueue pushes a Work message onto the queue for a free worker to pick
// up. log, if non-nil, records the dispatch outcome.
func (p *WorkerPool) Enqueue(req *message.Request, stream io.WriteCloser, log Log) {
	p.queue.push(poolMessage{kind: kindWork, req: req, stream: stream, log: log})
}

// Shutdown pushes exactly N Shutdown messages (draining naturally behind
// any queued Work) and joins every worker.
func (p *WorkerPool) Shutdown() {
	for i := 0; i < p.n; i++ {
		p.queue.push(poolMessage{kind: kindShutdown})
	}
	p.wg.Wait()
}
