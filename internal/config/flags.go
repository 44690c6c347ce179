package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-body-bytes maximum request body size in bytes
//	-trusted-proxies comma separated proxy IPs or CIDR ranges
//	-log-level minimum log level (debug, info, warn, error)
//	-log-file file log entries are appended to
//	-env deployment environment name
//	-debug enable debug mode
//	-disk-path mount point whose usage is reported
//	-cpu-sample-interval CPU usage sampling window (e.g., "1s")
//	-probe-interval background health probe period (e.g., "30s")
//	-sweep-interval rate limiter sweep period (e.g., "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var trustedProxies string
	var logLevel, logFile string
	var environment string
	var debug bool
	var diskPath string
	var cpuSampleInterval, probeInterval, sweepInterval time.Duration

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum request body size in bytes")
	fs.StringVar(&trustedProxies, "trusted-proxies", "", "Comma separated trusted proxy IPs or CIDR ranges")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&environment, "env", "", "Deployment environment name")
	fs.BoolVar(&debug, "debug", false, "Enable debug mode")
	fs.StringVar(&diskPath, "disk-path", "", "Mount point whose usage is reported")
	fs.DurationVar(&cpuSampleInterval, "cpu-sample-interval", 0, "CPU usage sampling window (e.g., 1s)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Health probe period (e.g., 30s)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Rate limiter sweep period (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			Debug:       debug,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
			TrustedProxies: splitList(trustedProxies),
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Health: Health{
			DiskPath:          diskPath,
			CPUSampleInterval: cpuSampleInterval,
			ProbeInterval:     probeInterval,
		},
		Limits: Limits{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
