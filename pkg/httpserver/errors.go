package httpserver

import "errors"

var (
	ErrStart          = errors.New("http server: start failed")
	ErrAlreadyRunning = errors.New("http server: already running")
	ErrShutdown       = errors.New("http server: graceful shutdown failed")
)
