package server

import (
	"fmt"
	"io"

	"github.com/curol/httpcore/message"
)

// DispatchError carries enough context to synthesize a correct error
// response: the status it maps to and a human-readable reason.
type DispatchError struct {
	Status message.Status
	Reason string
}

func (e *DispatchError) Error() string { return e.Reason }

// Dispatch converts the request's path-form to a canonical handler-path,
// looks up (method, path) in the registry, and invokes the handler.
//
// Authority/Asterisk path-forms fail with a DispatchError mapped to 400
// Bad Request; an unregistered (method, path) fails with a DispatchError
// mapped to 404 Not Found. A handler returning Continue is not supported
// and panics loudly rather than silently dropping the request.
func Dispatch(registry *Registry, req *message.Request, stream io.WriteCloser) (*message.Response, error) {
	handlerPath, err := req.Path().ToHandlerPath()
	if err != nil {
		return nil, &DispatchError{
			Status: message.StatusBadRequest,
			Reason: fmt.Sprintf("unroutable path: %v", err),
		}
	}

	handler, ok := registry.Get(req.Method(), handlerPath)
	if !ok {
		return nil, &DispatchError{
			Status: message.StatusNotFound,
			Reason: fmt.Sprintf("no handler for %s %s", req.Method(), handlerPath),
		}
	}

	result := handler.OnRequest(req, stream)
	if result.isContinue {
		panic("middleware not yet implemented: handler returned Continue")
	}
	return result.done, nil
}

// DispatchOrError runs Dispatch and, on a DispatchError, synthesizes the
// mapped error response instead of propagating the error, matching "every
// internal error eventually becomes a valid HTTP response on the same
// connection."
func DispatchOrError(registry *Registry, req *message.Request, version message.Version, stream io.WriteCloser) *message.Response {
	resp, err := Dispatch(registry, req, stream)
	if err == nil {
		return resp
	}

	var dispatchErr *DispatchError
	if de, ok := err.(*DispatchError); ok {
		dispatchErr = de
	} else {
		dispatchErr = &DispatchError{Status: message.StatusInternalServerError, Reason: err.Error()}
	}

	errResp, buildErr := message.ErrorResponse(version, stream, dispatchErr.Status, dispatchErr.Reason)
	if buildErr != nil {
		// The stream itself is unusable; nothing more can be done here.
		return nil
	}
	return errResp
}
