// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/mattn/go-shellwords"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// executes tree operations, one per line:
//
//	insert KEY VALUE
//	delete KEY
//	get KEY
//	nth INDEX
//	rank KEY
//	count | keys | print | check | clear
//
// words are split as in a shell so keys and values may be quoted,
// blank lines and lines starting with '#' are ignored
type interpreter struct {
	log       *logger.L
	out       io.Writer
	tree      *avl.Tree[string, string]
	printData bool
}

func newInterpreter(out io.Writer, log *logger.L, printData bool) *interpreter {
	return &interpreter{
		log:       log,
		out:       out,
		tree:      avl.New[string, string](),
		printData: printData,
	}
}

// run a script file against a fresh tree
func runScriptFile(fileName string, out io.Writer, log *logger.L, printData bool) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	log.Infof("run script: %q", fileName)
	return newInterpreter(out, log, printData).run(f)
}

// execute all lines, stops at the first error
func (in *interpreter) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	operations := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := shellwords.Parse(line)
		if nil != err {
			return fmt.Errorf("line %d: %s", lineNumber, err)
		}
		if err := in.execute(words); nil != err {
			in.log.Errorf("line %d: %q  error: %s", lineNumber, line, err)
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		operations += 1
	}
	if err := scanner.Err(); nil != err {
		return err
	}
	if 0 == operations {
		return fault.ErrEmptyScript
	}
	in.log.Debugf("operations: %d  count: %d", operations, in.tree.Count())
	return nil
}

// check the number of arguments after the command word
func needArguments(words []string, n int) error {
	if len(words)-1 < n {
		return fmt.Errorf("%w: %s needs: %d", fault.ErrMissingArgument, words[0], n)
	}
	if len(words)-1 > n {
		return fmt.Errorf("%w: %s takes: %d", fault.ErrTooManyArguments, words[0], n)
	}
	return nil
}

// execute a single operation
func (in *interpreter) execute(words []string) error {
	if 0 == len(words) {
		return nil
	}

	tree := in.tree
	command := strings.ToLower(words[0])

	switch command {
	case "insert", "i":
		if err := needArguments(words, 2); nil != err {
			return err
		}
		key, value := words[1], words[2]
		if old, replaced := tree.Insert(key, value); replaced {
			fmt.Fprintf(in.out, "insert: %q → %q  replaced: %q\n", key, value, old)
		} else {
			fmt.Fprintf(in.out, "insert: %q → %q\n", key, value)
		}

	case "delete", "d":
		if err := needArguments(words, 1); nil != err {
			return err
		}
		key := words[1]
		if value, ok := tree.Delete(key); ok {
			fmt.Fprintf(in.out, "delete: %q → %q\n", key, value)
		} else {
			fmt.Fprintf(in.out, "delete: %q not found\n", key)
		}

	case "get", "g":
		if err := needArguments(words, 1); nil != err {
			return err
		}
		key := words[1]
		if value, ok := tree.Get(key); ok {
			fmt.Fprintf(in.out, "get: %q → %q\n", key, value)
		} else {
			fmt.Fprintf(in.out, "get: %q not found\n", key)
		}

	case "nth", "n":
		if err := needArguments(words, 1); nil != err {
			return err
		}
		index, err := strconv.Atoi(words[1])
		if nil != err {
			return fmt.Errorf("%w: %q", fault.ErrInvalidIndex, words[1])
		}
		if key, value, ok := tree.Nth(index); ok {
			fmt.Fprintf(in.out, "nth: %d → %q = %q\n", index, key, value)
		} else {
			fmt.Fprintf(in.out, "nth: %d out of range\n", index)
		}

	case "rank", "r":
		if err := needArguments(words, 1); nil != err {
			return err
		}
		key := words[1]
		if index, ok := tree.Rank(key); ok {
			fmt.Fprintf(in.out, "rank: %q → %d\n", key, index)
		} else {
			fmt.Fprintf(in.out, "rank: %q not found\n", key)
		}

	case "count", "c":
		if err := needArguments(words, 0); nil != err {
			return err
		}
		fmt.Fprintf(in.out, "count: %d\n", tree.Count())

	case "keys", "k":
		if err := needArguments(words, 0); nil != err {
			return err
		}
		fmt.Fprintf(in.out, "keys: %q\n", tree.Keys())

	case "print", "p":
		if err := needArguments(words, 0); nil != err {
			return err
		}
		depth := tree.Print(in.out, in.printData)
		fmt.Fprintf(in.out, "depth: %d\n", depth)

	case "check":
		if err := needArguments(words, 0); nil != err {
			return err
		}
		if err := tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(in.out, "check: ok  count: %d  height: %d\n", tree.Count(), tree.Height())

	case "clear":
		if err := needArguments(words, 0); nil != err {
			return err
		}
		tree.Clear()
		fmt.Fprintf(in.out, "clear\n")

	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidCommand, words[0])
	}
	return nil
}
