package main

import (
	"net/http"
	"os"
	"time"
)

// Tiny probe binary for container health checks. It asks the version
// endpoint and exits non-zero when the server is unreachable or failing.
func main() {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://127.0.0.1:8080/api/version")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
