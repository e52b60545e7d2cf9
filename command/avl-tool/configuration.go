// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults
const (
	defaultLogDirectory = "."
	defaultLogFile      = "avl-tool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultWatchDelay = 250 // milliseconds
	defaultPageSize   = 20
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings read from the optional Lua file
type Configuration struct {
	PrintData  bool                 `gluamapper:"print_data"`
	WatchDelay int                  `gluamapper:"watch_delay"`
	PageSize   int                  `gluamapper:"page_size"`
	Logging    logger.Configuration `gluamapper:"logging"`
}

// will read decode and verify the configuration
// an empty file name just returns the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	// the Lua levels table is merged into this map
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		PrintData:  false,
		WatchDelay: defaultWatchDelay,
		PageSize:   defaultPageSize,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// log directory relative to the configuration file
	if !filepath.IsAbs(options.Logging.Directory) {
		dataDirectory, _ := filepath.Split(configurationFileName)
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	if options.WatchDelay < 0 {
		options.WatchDelay = 0
	}
	if options.PageSize <= 0 {
		options.PageSize = defaultPageSize
	}

	return options, nil
}
