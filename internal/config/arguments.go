package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/ShadowStrikeHQ/net-ping/internal/version"
)

type Args struct {
	Host           string
	Count          uint
	TimeoutSeconds uint

	// Probe transport
	ICMP       bool
	Privileged bool
	Port       uint

	// Resolution
	ForceIPv4    bool
	ForceIPv6    bool
	Nameserver   string
	ResolveCache time.Duration

	// Output
	Json     bool   // output json to stdout
	JsonFile string // output json to file while keeping text output

	// Logging
	Log      string // log file path, empty means no logging
	LogLevel string // log level: debug, info, warn, error
}

func ParseArgs() (Args, error) {
	var args Args
	var showVersion bool

	// Set custom usage message
	flag.Usage = func() {
		println("net-ping")
		println()
		println("Sends probe packets to a host and reports per-probe and aggregate response times.")
		println()
		println("Usage:")
		println("  net-ping [OPTIONS] HOST")
		println()
		println("Examples:")
		println("  net-ping example.com                 # 4 UDP probes, 1s timeout")
		println("  net-ping -c 10 -t 2 example.com      # 10 probes, 2s timeout")
		println("  net-ping --icmp example.com          # ICMP echo probes")
		println("  net-ping -J example.com              # JSON records to stdout")
		println()
		println("Options:")
		flag.PrintDefaults()
	}

	flag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	flag.UintVarP(&args.Count, "count", "c", 4, "Number of probes to send")
	flag.UintVarP(&args.TimeoutSeconds, "timeout", "t", 1, "Per-probe timeout in seconds")
	flag.BoolVarP(&args.ICMP, "icmp", "I", false, "Use ICMP echo probes instead of UDP datagrams")
	flag.BoolVar(&args.Privileged, "privileged", false, "Use a raw ICMP socket (requires elevated privileges)")
	flag.UintVarP(&args.Port, "port", "p", 1, "Destination port for UDP probes")
	flag.BoolVarP(&args.ForceIPv4, "ipv4", "4", false, "Force IPv4")
	flag.BoolVarP(&args.ForceIPv6, "ipv6", "6", false, "Force IPv6")
	flag.StringVarP(&args.Nameserver, "nameserver", "n", "", "Resolve via this nameserver instead of the system resolver")
	flag.DurationVar(&args.ResolveCache, "resolve-cache", 0, "Cache successful lookups for this long (0 = resolve every probe)")
	flag.BoolVarP(&args.Json, "json", "J", false, "Write JSON records to stdout (disables text output)")
	flag.StringVarP(&args.JsonFile, "json-file", "j", "", "Write JSON records to file (keeps text output)")
	flag.StringVarP(&args.Log, "log", "l", "", "Diagnostic log file (empty = no logging)")
	flag.StringVar(&args.LogLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flag.Parse()

	// Handle version flag
	if showVersion {
		fmt.Println(version.FullVersion())
		os.Exit(0)
	}

	args.Host = flag.Arg(0)
	return args, args.validate()
}

func (a Args) validate() error {
	switch {
	case a.Host == "":
		return errors.New("host is required")
	case a.TimeoutSeconds == 0:
		return errors.New("timeout must be at least 1 second")
	case a.Port == 0 || a.Port > 65535:
		return errors.New("port must be between 1 and 65535")
	case a.ForceIPv4 && a.ForceIPv6:
		return errors.New("cannot force both IPv4 and IPv6")
	case a.Json && a.JsonFile != "":
		return errors.New("cannot use both --json and --json-file")
	case a.Privileged && !a.ICMP:
		return errors.New("--privileged only applies to ICMP probes")
	case a.ResolveCache < 0:
		return errors.New("resolve cache duration cannot be negative")
	}
	return nil
}

// Timeout returns the per-probe deadline as a duration
func (a Args) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// TransportName returns the probe transport name based on args
func (a Args) TransportName() string {
	if a.ICMP {
		return "ICMP"
	}
	return "UDP"
}
