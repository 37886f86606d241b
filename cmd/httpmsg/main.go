// Command httpmsg inspects URIs and byte streams from the command line.
//
// Usage:
//
//	httpmsg uri <uri> [--scheme s] [--host h] [--port n] [--no-port] [--path p] [--query q] [--fragment f] [--user u] [--password p] [--validate] [--redact]
//	httpmsg cat <file> [--mode r] [--offset n]
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
