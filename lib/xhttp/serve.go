// Package xhttp implements the HTTP plumbing of the watch server.
package xhttp

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"
)

const (
	maxHeaderBytes = 1 << 18 // 262,144B
	maxBodyBytes   = 1 << 20 // 1,048,576B
)

// NewServer returns a server for h whose requests inherit ctx. Request bodies over
// maxBodyBytes are rejected.
func NewServer(ctx context.Context, log *log.Logger, h http.Handler) *http.Server {
	return &http.Server{
		MaxHeaderBytes: maxHeaderBytes,
		ReadTimeout:    time.Minute,
		WriteTimeout:   time.Minute,
		IdleTimeout:    time.Hour,
		ErrorLog:       log,
		Handler:        http.MaxBytesHandler(h, maxBodyBytes),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
