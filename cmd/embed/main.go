// Package main starts the embed card rendering service.
//
// This process owns the public HTTP surface that turns query parameters
// into preview documents for humans and link-unfurling crawlers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	embedcmd "github.com/louisbranch/embedcard/internal/cmd/embed"
)

func main() {
	cfg, err := embedcmd.ParseConfig(flag.CommandLine, os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[EMBED] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := embedcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
