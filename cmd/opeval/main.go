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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/algorand/go-deadlock"
	"github.com/spf13/cobra"

	"github.com/yoyow-org/go-yoyow/config"
	"github.com/yoyow-org/go-yoyow/ledger"
	"github.com/yoyow-org/go-yoyow/logging"
	"github.com/yoyow-org/go-yoyow/protocol"
)

const dataDirEnv = "YOYOW_DATA"

// ledgerDirName is the store path inside the data directory.
const ledgerDirName = "ledger"

const (
	logFileName        = "opeval.log"
	logArchiveFileName = "opeval.archive.log"
)

var log = logging.Base()

var dataDir string

var versionCheck bool

var logLevel string

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(assetCmd)

	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display the current build version and exit")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override BaseLoggerDebugLevel from config.json, e.g. debug or warn")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "datadir", "d", "", "Data directory holding the ledger store and config.json (default $"+dataDirEnv+")")
}

var rootCmd = &cobra.Command{
	Use:   "opeval",
	Short: "Evaluate and apply operations against a local fee ledger",
	Long:  `opeval runs transactions through the operation evaluator against a ledger stored in a data directory. It is a development tool: there is no network, every applied transaction is committed to the local store.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionCheck {
			fmt.Println(config.FormatVersionAndLicense())
			return
		}
		cmd.HelpFunc()(cmd, args)
	},
}

func main() {
	deadlock.Opts.Disable = !config.DeadlockDetectionEnabled()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveDataDir() string {
	dir := dataDir
	if dir == "" {
		dir = os.Getenv(dataDirEnv)
	}
	if dir == "" {
		reportErrorf("no data directory given, use -d or set %s", dataDirEnv)
	}
	return dir
}

// loadLocal reads config.json from dir, falling back to the defaults when
// the file is absent.
func loadLocal(dir string) (config.Local, error) {
	cfg, err := config.LoadConfigFromDisk(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	return cfg, nil
}

// openLedger opens the ledger in dir. genesis is only consulted when the
// store is empty.
func openLedger(dir string, genesis *ledger.Genesis) (*ledger.Ledger, error) {
	cfg, err := loadLocal(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", dir, err)
	}
	if err := setupLogging(dir, cfg, logLevel); err != nil {
		return nil, err
	}
	return ledger.OpenLedger(log, filepath.Join(dir, ledgerDirName), genesis, cfg)
}

// setupLogging sends the log to a size-capped file in dir, or leaves it
// on stderr when LogSizeLimit is 0. A non-empty level overrides the one
// in cfg.
func setupLogging(dir string, cfg config.Local, level string) error {
	lvl := logging.Level(cfg.BaseLoggerDebugLevel)
	if level != "" {
		var err error
		if lvl, err = logging.ParseLevel(level); err != nil {
			return err
		}
	}
	log.SetLevel(lvl)
	if cfg.LogSizeLimit == 0 {
		return nil
	}
	w, err := logging.MakeCyclicFileWriter(filepath.Join(dir, logFileName), filepath.Join(dir, logArchiveFileName), cfg.LogSizeLimit)
	if err != nil {
		return err
	}
	log.SetOutput(w)
	log.Infof("logging at %s to %s", lvl, logFileName)
	return nil
}

func mustOpenLedger() *ledger.Ledger {
	l, err := openLedger(resolveDataDir(), nil)
	if err != nil {
		reportErrorf(errorOpenLedger, err)
	}
	return l
}

func printJSON(obj interface{}) {
	fmt.Println(string(protocol.EncodeJSON(obj)))
}

func reportInfof(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
