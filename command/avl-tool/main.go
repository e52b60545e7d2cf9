// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "nth", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "rank", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "count", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "page", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'P'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands need neither configuration nor logging
	if processSetupCommand(program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		levels := make(map[string]string, len(theConfiguration.Logging.Levels)+1)
		for tag, level := range theConfiguration.Logging.Levels {
			levels[tag] = level
		}
		levels[logger.DefaultTag] = "info"
		theConfiguration.Logging.Levels = levels
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	printData := theConfiguration.PrintData || len(options["print"]) > 0

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "demo", "d":
		err = runDemo(os.Stdout, log, printData)

	case "script", "s":
		if 1 != len(arguments) {
			exitwithstatus.Message("%s: script requires exactly one FILE argument", program)
		}
		if len(options["watch"]) > 0 {
			err = watchScript(arguments[0], theConfiguration.WatchDelay, os.Stdout, log, printData)
		} else {
			err = runScriptFile(arguments[0], os.Stdout, log, printData)
		}

	case "leveldb", "db":
		if len(arguments) < 1 || len(arguments) > 2 {
			exitwithstatus.Message("%s: leveldb requires DIR and an optional hex PREFIX", program)
		}
		prefix := ""
		if 2 == len(arguments) {
			prefix = arguments[1]
		}
		query, qerr := getQuery(options, theConfiguration.PageSize)
		if nil != qerr {
			exitwithstatus.Message("%s: %s", program, qerr)
		}
		err = runLevelDB(arguments[0], prefix, query, os.Stdout, log)
	}

	if nil != err {
		log.Criticalf("%s: error: %s", command, err)
		exitwithstatus.Message("%s: %s failed with error: %s", program, command, err)
	}
}
