// Command phonemes converts words to phoneme strings using a local
// pronunciation dictionary and prints one JSON object per word.
//
// Exit codes: 0 = success, 1 = error (including an unreadable or malformed
// dictionary).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/phoneme-service/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.CreateRootCommand(cli.NewFlags())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
