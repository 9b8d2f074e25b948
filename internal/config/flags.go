package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured host and port data and implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-server-address client target server address
//	-blob-endpoint object storage endpoint URL
//	-blob-bucket object storage bucket
//	-blob-local-dir filesystem object storage directory
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-upload-timeout client photo upload timeout (e.g., "2m")
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var databaseDSN string
	var serverAddress string
	var blobEndpoint string
	var blobBucket string
	var blobLocalDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var uploadTimeout time.Duration

	flag.Var(&listenAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&serverAddress, "server-address", "", "Client target server address")
	flag.StringVar(&blobEndpoint, "blob-endpoint", "", "Object storage endpoint URL")
	flag.StringVar(&blobBucket, "blob-bucket", "", "Object storage bucket")
	flag.StringVar(&blobLocalDir, "blob-local-dir", "", "Filesystem object storage directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&uploadTimeout, "upload-timeout", 0, "Photo upload timeout (e.g., 2m)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Blob: Blob{
				Endpoint: blobEndpoint,
				Bucket:   blobBucket,
				LocalDir: blobLocalDir,
			},
		},
		Server: Server{
			HTTPAddress:    listenAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
			UploadTimeout:  uploadTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a host:port string into the NetAddress. The port must be a
// positive integer; the host must be "localhost" or a valid IP address.
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

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
