package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Endpoint        string `json:"endpoint"`
			Region          string `json:"region"`
			Bucket          string `json:"bucket"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			LocalDir        string `json:"local_dir"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Extractor struct {
		Endpoint       string   `json:"endpoint"`
		Token          string   `json:"token"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"extractor,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		UploadTimeout  Duration `json:"upload_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshThrottle Duration `json:"refresh_throttle"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Blob: Blob{
				Endpoint:        jsonCfg.Storage.Blob.Endpoint,
				Region:          jsonCfg.Storage.Blob.Region,
				Bucket:          jsonCfg.Storage.Blob.Bucket,
				AccessKeyID:     jsonCfg.Storage.Blob.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.Blob.SecretAccessKey,
				LocalDir:        jsonCfg.Storage.Blob.LocalDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Extractor: Extractor{
			Endpoint:       jsonCfg.Extractor.Endpoint,
			Token:          jsonCfg.Extractor.Token,
			Model:          jsonCfg.Extractor.Model,
			RequestTimeout: time.Duration(jsonCfg.Extractor.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			UploadTimeout:  time.Duration(jsonCfg.Adapter.UploadTimeout),
		},
		Workers: Workers{
			RefreshThrottle: time.Duration(jsonCfg.Workers.RefreshThrottle),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like "1h"
// or "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
