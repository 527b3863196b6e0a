// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-yoyow
//
// go-yoyow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-yoyow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-yoyow.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yoyow-org/go-yoyow/util/codecs"
)

// ConfigFilename is the name of the local configuration file in a data directory.
const ConfigFilename = "config.json"

// FeeSource names one funding source a fee can be drawn from.
type FeeSource string

// Fee funding sources.
const (
	FeeSourceCsaf    FeeSource = "csaf"
	FeeSourcePrepaid FeeSource = "prepaid"
	FeeSourceBalance FeeSource = "balance"
)

// Local holds the per-node settings. Unlike ConsensusParams, these may
// differ between nodes without affecting consensus, with the exception of
// FeeSourceOrder which must be identical across a network.
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	Version uint32 `json:"Version"`

	// logrus level: 0 panic .. 5 debug
	BaseLoggerDebugLevel uint32 `json:"BaseLoggerDebugLevel"`

	// Order in which fee funding sources are drawn when a fee carries no
	// explicit options.
	FeeSourceOrder []string `json:"FeeSourceOrder"`

	// Storage backend for the ledger store, see util/kvstore.
	StorageEngine string `json:"StorageEngine"`

	// Keep the ledger store in memory only.
	LedgerInMemory bool `json:"LedgerInMemory"`

	EnableMetrics bool `json:"EnableMetrics"`

	// LogSizeLimit caps the data directory log file in bytes before it is
	// archived. 0 logs to stderr instead.
	LogSizeLimit uint64 `json:"LogSizeLimit"`
}

var defaultLocal = Local{
	Version:              1,
	BaseLoggerDebugLevel: 4,
	FeeSourceOrder:       []string{string(FeeSourceCsaf), string(FeeSourcePrepaid), string(FeeSourceBalance)},
	StorageEngine:        "pebble",
	LedgerInMemory:       false,
	EnableMetrics:        true,
	LogSizeLimit:         64 << 20,
}

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	cfg := defaultLocal
	cfg.FeeSourceOrder = append([]string(nil), defaultLocal.FeeSourceOrder...)
	return cfg
}

// ErrInvalidFeeSourceOrder is returned when FeeSourceOrder is not a
// permutation of csaf, prepaid and balance.
var ErrInvalidFeeSourceOrder = errors.New("FeeSourceOrder must list csaf, prepaid and balance exactly once")

// FeeSourcePolicy returns the parsed FeeSourceOrder.
func (cfg Local) FeeSourcePolicy() ([]FeeSource, error) {
	if len(cfg.FeeSourceOrder) != 3 {
		return nil, ErrInvalidFeeSourceOrder
	}
	seen := make(map[FeeSource]bool, 3)
	order := make([]FeeSource, 0, 3)
	for _, s := range cfg.FeeSourceOrder {
		src := FeeSource(s)
		switch src {
		case FeeSourceCsaf, FeeSourcePrepaid, FeeSourceBalance:
		default:
			return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidFeeSourceOrder, s)
		}
		if seen[src] {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvalidFeeSourceOrder, s)
		}
		seen[src] = true
		order = append(order, src)
	}
	return order, nil
}

// LoadConfigFromDisk returns a Local config structure based on merging the defaults
// with settings loaded from the config file from the custom dir.  If the custom file
// cannot be loaded, the default config is returned (with the error from loading the
// custom file).
func LoadConfigFromDisk(custom string) (c Local, err error) {
	return mergeConfigFromFile(filepath.Join(custom, ConfigFilename), GetDefaultLocal())
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	f, err := os.Open(configpath)
	if err != nil {
		return source, err
	}
	f.Close()

	c := source
	c.FeeSourceOrder = nil
	err = codecs.LoadObjectFromFile(configpath, &c)
	if err != nil {
		return source, err
	}
	if c.FeeSourceOrder == nil {
		c.FeeSourceOrder = source.FeeSourceOrder
	}
	if _, err = c.FeeSourcePolicy(); err != nil {
		return source, err
	}
	return c, nil
}

// SaveToDisk writes the non-default Local settings into a root/ConfigFilename file
func (cfg Local) SaveToDisk(root string) error {
	return cfg.SaveToFile(filepath.Join(root, ConfigFilename))
}

// SaveToFile saves the config to a specific filename, allowing overriding the default name
func (cfg Local) SaveToFile(filename string) error {
	return codecs.SaveObjectToFile(filename, cfg, true)
}
