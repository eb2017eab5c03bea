// Package server implements the handler registry, the mutex+condvar
// worker pool, and the per-connection listener that together dispatch
// parsed requests to user-registered handlers and write back the
// serialized response.
package server

import (
	"io"

	"github.com/curol/httpcore/message"
)

// HandlerResult is the two-case variant a Handler's OnRequest returns.
// Done carries the finished Response for an endpoint; Continue is reserved
// for a future middleware chain and is not implemented.
type HandlerResult struct {
	done       *message.Response
	cont       *message.Request
	isContinue bool
}

// Done wraps a finished Response.
func Done(resp *message.Response) HandlerResult {
	return HandlerResult{done: resp}
}

// Continue wraps a request to be passed further down a handler chain.
// Middleware chaining is not yet implemented; a dispatcher that receives
// a Continue result must fail loudly rather than guess intent.
func Continue(req *message.Request) HandlerResult {
	return HandlerResult{cont: req, isContinue: true}
}

// Response returns the wrapped Response and true for a Done result, or
// nil and false for a Continue result. Callers outside this package (e.g.
// handler tests) use this instead of reaching into unexported fields.
func (r HandlerResult) Response() (*message.Response, bool) {
	if r.isContinue {
		return nil, false
	}
	return r.done, true
}

// Handler is the polymorphic collaborator a registered route implements:
// a fixed path and method, and the request-to-result function. stream is
// the write-capable destination the handler's Response will ultimately be
// built against (via message.NewResponseBuilder().Stream(stream)).
type Handler interface {
	Path() message.HandlerPath
	Method() message.Method
	OnRequest(req *message.Request, stream io.WriteCloser) HandlerResult
}
