package handler

import (
	"bytes"
	"io"
	"net/http"
)

type writerResponse struct {
	contentType string
	write       func(io.Writer) error
}

// Render buffers the body so a failed write still reaches the error handler
// before anything is sent.
func (s writerResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	var buf bytes.Buffer
	if err := s.write(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", s.contentType)
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// Write responds with whatever write produces, e.g. an RSS document.
func Write(contentType string, write func(io.Writer) error) Response {
	return writerResponse{contentType: contentType, write: write}
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error hands err to the configured ErrorHandler.
func Error(err error) Response {
	if err == nil {
		err = ErrInternal
	}
	return errorResponse{err: err}
}
