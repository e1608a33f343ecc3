// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
)

// NetAddress is a listen address given as host:port. The host may be
// empty (all interfaces), "localhost" or an IP literal.
type NetAddress struct {
	Host string
	Port int
}

var _ flag.Value = (*NetAddress)(nil)

func (a *NetAddress) String() string {
	if a == nil || (a.Host == "" && a.Port == 0) {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("address %q is not host:port: %w", s, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("port %q is not a number", portStr)
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("host %q is neither localhost nor an IP address", host)
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags reads command-line options from args. The first positional
// argument names the campaign unless -campaign is given.
//
// -h and -help return [flag.ErrHelp] after printing usage.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var httpAddr, grpcAddr NetAddress

	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] [campaign]\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.Var(&httpAddr, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC health listen address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout of the daemon, e.g. 30s")

	fs.StringVar(&cfg.Storage.Backend, "b", "", "storage backend: sqlite, postgres, badger, file, memory or remote")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "sqlite file path or PostgreSQL DSN")
	fs.StringVar(&cfg.Storage.Dir, "dir", "", "data directory of the badger and file backends")
	fs.StringVar(&cfg.Storage.Remote.URL, "remote-url", "", "base URL of the remote record service")
	fs.DurationVar(&cfg.Storage.Remote.RequestTimeout, "remote-timeout", 0, "timeout of one remote record call, e.g. 10s")

	fs.IntVar(&cfg.Crypto.KDFIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.IntVar(&cfg.Crypto.DerivationWorkers, "derivation-workers", 0, "goroutines deriving section keys")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "HMAC key for local API tokens; empty disables auth")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "issuer claim of local API tokens")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "lifetime of local API tokens, e.g. 1h")
	fs.StringVar(&cfg.App.Campaign, "campaign", "", "campaign to load at startup")

	fs.StringVar(&cfg.Logging.Level, "log-level", "", "zerolog level name")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file (same as -c)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	if cfg.App.Campaign == "" && fs.NArg() > 0 {
		cfg.App.Campaign = fs.Arg(0)
	}

	return cfg, nil
}
