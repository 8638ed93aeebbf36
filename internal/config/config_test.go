package config

import (
	"log/slog"
	"testing"
	"time"
)

func validArgs() Args {
	return Args{
		Host:           "example.com",
		Count:          4,
		TimeoutSeconds: 1,
		Port:           1,
		LogLevel:       "error",
	}
}

func TestArgs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Args)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(a *Args) {},
		},
		{
			name:    "missing host",
			mutate:  func(a *Args) { a.Host = "" },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(a *Args) { a.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:   "zero count is allowed",
			mutate: func(a *Args) { a.Count = 0 },
		},
		{
			name:    "zero port",
			mutate:  func(a *Args) { a.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port too large",
			mutate:  func(a *Args) { a.Port = 65536 },
			wantErr: true,
		},
		{
			name:    "both address families forced",
			mutate:  func(a *Args) { a.ForceIPv4 = true; a.ForceIPv6 = true },
			wantErr: true,
		},
		{
			name:    "json and json-file together",
			mutate:  func(a *Args) { a.Json = true; a.JsonFile = "out.json" },
			wantErr: true,
		},
		{
			name:    "privileged without icmp",
			mutate:  func(a *Args) { a.Privileged = true },
			wantErr: true,
		},
		{
			name:   "privileged with icmp",
			mutate: func(a *Args) { a.Privileged = true; a.ICMP = true },
		},
		{
			name:    "negative resolve cache",
			mutate:  func(a *Args) { a.ResolveCache = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := validArgs()
			tt.mutate(&args)
			err := args.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestArgs_Timeout(t *testing.T) {
	tests := []struct {
		seconds uint
		want    time.Duration
	}{
		{1, time.Second},
		{5, 5 * time.Second},
	}

	for _, tt := range tests {
		a := Args{TimeoutSeconds: tt.seconds}
		if got := a.Timeout(); got != tt.want {
			t.Errorf("Timeout() with %d seconds = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestArgs_TransportName(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want string
	}{
		{
			name: "UDP by default",
			args: Args{},
			want: "UDP",
		},
		{
			name: "ICMP when selected",
			args: Args{ICMP: true},
			want: "ICMP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.TransportName(); got != tt.want {
				t.Errorf("TransportName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_parseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.level); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
