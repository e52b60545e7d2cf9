// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that neither read the configuration file nor start
// logging, returns false when main must continue processing
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "demo", "d", "script", "s", "leveldb", "db":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--config-file=FILE] [--print] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  demo                       (d)      - insert the alphabet and show lookups by key and by rank\n\n")

		fmt.Printf("  script FILE                (s)      - execute the operations in FILE, one per line:\n")
		fmt.Printf("                                        insert K V | delete K | get K | nth N | rank K\n")
		fmt.Printf("                                        count | keys | print | check | clear\n")
		fmt.Printf("                                        --watch: run again each time FILE changes\n\n")

		fmt.Printf("  leveldb DIR [PREFIX]       (db)     - build a rank index of the records in DIR\n")
		fmt.Printf("                                        whose keys start with hex PREFIX\n")
		fmt.Printf("                                        --nth=N | --rank=HEX-KEY | --count | --page=START\n")
		fmt.Printf("\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}
	return true
}
