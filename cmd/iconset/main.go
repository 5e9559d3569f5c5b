// Command iconset resamples one source image into a set of square icons,
// one per bucket, e.g. the Android launcher icon for every screen density.
//
// Usage:
//
//	iconset -source public/icon.png -out android/app/src/main/res
//	iconset -config iconset.yaml -workers 4 -v
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cmd, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cmd, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
