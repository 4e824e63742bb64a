package main

import (
	"net"
	"net/http"
	"testing"
)

func TestRunServerReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer ln.Close()

	err = runServer(ln.Addr().String(), http.NotFoundHandler())
	if err == nil {
		t.Fatalf("runServer on a busy address returned nil")
	}
}
