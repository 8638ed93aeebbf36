package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ShadowStrikeHQ/net-ping/internal/config"
	"github.com/ShadowStrikeHQ/net-ping/internal/output"
	"github.com/ShadowStrikeHQ/net-ping/internal/probe"
	"github.com/ShadowStrikeHQ/net-ping/internal/shared"
)

func main() {
	args, err := config.ParseArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	logSink, err := config.SetupLogging(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	if logSink != nil {
		defer logSink.Close()
	}

	slog.Debug("Starting probe session",
		"host", args.Host,
		"count", args.Count,
		"timeout", args.Timeout(),
		"transport", args.TransportName(),
	)

	reporters := &output.Manager{}
	if !args.Json {
		reporters.Register(output.NewTextOutput(os.Stdout))
	}
	if args.Json || args.JsonFile != "" {
		jsonOut, err := output.NewJSONOutput(args.JsonFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open JSON output: %v\n", err)
			os.Exit(1)
		}
		reporters.Register(jsonOut)
	}
	defer reporters.Close()

	session := probe.NewSession(sessionConfig(args), buildProber(args), reporters)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Run in a goroutine so we can handle signals
	done := make(chan shared.Summary, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	// Wait for either completion or interrupt
	select {
	case <-done:
		// Session completed naturally
	case <-sigChan:
		// User pressed Ctrl+C; stop between attempts and still report
		// the partial summary
		slog.Debug("Received interrupt signal, stopping...")
		cancel()
		<-done
	}

	slog.Debug("Probe session completed")
}

func sessionConfig(args config.Args) probe.Config {
	return probe.Config{
		Host:    args.Host,
		Count:   args.Count,
		Timeout: args.Timeout(),
	}
}

func buildProber(args config.Args) probe.Prober {
	var resolver probe.Resolver
	if args.Nameserver != "" {
		resolver = probe.NewDNSResolver(args.Nameserver, args.Timeout(), args.ForceIPv6)
	} else {
		resolver = probe.NewSystemResolver(args.ForceIPv4, args.ForceIPv6)
	}
	if args.ResolveCache > 0 {
		resolver = probe.NewCachedResolver(resolver, args.ResolveCache)
	}

	if args.ICMP {
		return probe.NewICMPProber(resolver, args.Privileged)
	}
	return probe.NewUDPProber(resolver, uint16(args.Port))
}
