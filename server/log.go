package server

import (
	"log"

	"github.com/google/uuid"

	"github.com/curol/httpcore/message"
)

// Log is the server's logging collaborator. Status is called once per
// dispatched request; Fatal is called on an I/O failure and on a recovered
// handler panic (after its 500 response has been attempted).
type Log interface {
	Status(req *message.Request, resp *message.Response)
	Fatal(err error)
}

// stdLog writes unstructured lines via the standard log package, tagging
// each with a connection ID so concurrent worker output can be correlated
// back to one connection.
type stdLog struct {
	connID string
}

// NewConnectionLog mints a fresh connection ID and returns a Log scoped to
// it. One is created per accepted connection in the listener's accept
// loop.
func NewConnectionLog() Log {
	return &stdLog{connID: uuid.NewString()}
}

func (l *stdLog) Status(req *message.Request, resp *message.Response) {
	log.Printf("[%s] %s %s -> %d", l.connID, req.Method(), req.Path(), resp.Status().Code())
}

func (l *stdLog) Fatal(err error) {
	log.Printf("[%s] error: %v", l.connID, err)
}
