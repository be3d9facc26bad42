// Container health probe: GET /healthz on the local server and exit 0/1.
// Kept as a separate static binary so image health checks need no shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
)

func main() {
	addr := flag.String("addr", "http://127.0.0.1:8080", "server base URL")
	timeout := flag.Duration("timeout", 3*time.Second, "request timeout")
	flag.Parse()

	status, body, err := fasthttp.GetTimeout(nil, *addr+"/healthz", *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "health check failed: %v\n", err)
		os.Exit(1)
	}
	if status != fasthttp.StatusOK {
		fmt.Fprintf(os.Stderr, "health check failed: HTTP %d: %s\n", status, body)
		os.Exit(1)
	}
	fmt.Println("ok")
}
