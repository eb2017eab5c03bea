package server

import (
	"bufio"
	"fmt"
	"net"
	"time"

	"github.com/curol/httpcore/message"
)

// Listener accepts TCP connections, reads and parses each one's head, and
// enqueues the resulting Request onto a WorkerPool. The accept loop
// terminates only when the bind socket fails; per-connection errors are
// logged and do not stop the server.
type Listener struct {
	config   Config
	registry *Registry
	pool     *WorkerPool
	listener net.Listener
}

// NewListener binds config.Network/Address and prepares (but does not yet
// start) a Listener dispatching against registry.
func NewListener(config Config, registry *Registry) (*Listener, error) {
	ln, err := net.Listen(config.Network, config.Address)
	if err != nil {
		return nil, fmt.Errorf("listen %s %s: %w", config.Network, config.Address, err)
	}
	return &Listener{
		config:   config,
		registry: registry,
		pool:     NewWorkerPool(config.Workers, registry),
		listener: ln,
	}, nil
}

// Serve runs the accept loop forever: accept, then read and parse the
// head inline on this same thread, matching §5's "one accept thread and N
// worker threads" — the per-connection head read is a suspension point on
// the accept thread itself, not a spawned helper. Only the dispatch and
// send that follow a successful parse move to the worker pool. Serve only
// returns when Accept fails (e.g. the listening socket was closed).
func (l *Listener) Serve() error {
	defer l.pool.Shutdown()
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			return err
		}
		l.handleConnection(conn)
	}
}

// Close stops accepting new connections.
func (l *Listener) Close() error {
	return l.listener.Close()
}

func (l *Listener) handleConnection(conn net.Conn) {
	connLog := NewConnectionLog()

	if err := conn.SetDeadline(time.Now().Add(l.config.Timeout)); err != nil {
		connLog.Fatal(err)
		conn.Close()
		return
	}

	reader := bufio.NewReader(conn)
	head, err := message.ReadRequestHead(reader)
	if err != nil {
		resp, buildErr := message.ErrorResponse(message.Version11, conn, message.StatusBadRequest, err.Error())
		if buildErr == nil {
			if sendErr := resp.Send(); sendErr != nil {
				connLog.Fatal(sendErr)
			}
		} else {
			conn.Close()
		}
		return
	}

	req := message.NewRequest(head, reader)
	// The same connection backs both the request's read half and the
	// eventual response's write half; after Response.Send completes the
	// connection is closed, matching "at most one in-flight request per
	// connection."
	l.pool.Enqueue(req, conn, connLog)
}
