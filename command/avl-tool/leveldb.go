// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/rankindex"
)

// what to ask of a rank index, a negative nth or page means unset
type indexQuery struct {
	nth      int
	rank     []byte
	count    bool
	page     int
	pageSize int
}

// decode the index query options
func getQuery(options map[string][]string, pageSize int) (*indexQuery, error) {
	query := &indexQuery{
		nth:      -1,
		page:     -1,
		pageSize: pageSize,
		count:    len(options["count"]) > 0,
	}

	if 1 == len(options["nth"]) {
		n, err := strconv.Atoi(options["nth"][0])
		if nil != err || n < 0 {
			return nil, fmt.Errorf("%w: nth: %q", fault.ErrInvalidIndex, options["nth"][0])
		}
		query.nth = n
	} else if len(options["nth"]) > 1 {
		return nil, fmt.Errorf("%w: nth", fault.ErrTooManyArguments)
	}

	if 1 == len(options["rank"]) {
		key, err := hex.DecodeString(options["rank"][0])
		if nil != err {
			return nil, fmt.Errorf("rank: %q  error: %w", options["rank"][0], err)
		}
		query.rank = key
	} else if len(options["rank"]) > 1 {
		return nil, fmt.Errorf("%w: rank", fault.ErrTooManyArguments)
	}

	if 1 == len(options["page"]) {
		n, err := strconv.Atoi(options["page"][0])
		if nil != err || n < 0 {
			return nil, fmt.Errorf("%w: page: %q", fault.ErrInvalidIndex, options["page"][0])
		}
		query.page = n
	} else if len(options["page"]) > 1 {
		return nil, fmt.Errorf("%w: page", fault.ErrTooManyArguments)
	}

	// nothing asked: show a summary
	if query.nth < 0 && nil == query.rank && !query.count && query.page < 0 {
		query.count = true
		query.page = 0
	}

	return query, nil
}

// build an index from the records under a hex prefix and answer a query
func runLevelDB(directory string, hexPrefix string, query *indexQuery, out io.Writer, log *logger.L) error {
	prefix, err := hex.DecodeString(hexPrefix)
	if nil != err {
		return fmt.Errorf("prefix: %q  error: %w", hexPrefix, err)
	}

	source, err := rankindex.OpenLevelDB(directory, prefix)
	if nil != err {
		return err
	}
	defer source.Close()

	index, err := rankindex.Build(source, logger.New("rankindex"))
	if nil != err {
		return err
	}
	log.Infof("leveldb: %q  prefix: %x  keys: %d", directory, prefix, index.Count())

	return answerQuery(index, query, out)
}

func answerQuery(index *rankindex.Index, query *indexQuery, out io.Writer) error {
	if query.count {
		fmt.Fprintf(out, "count: %d\n", index.Count())
	}

	if query.nth >= 0 {
		if key, value, ok := index.At(query.nth); ok {
			fmt.Fprintf(out, "%d: Key: %x\n", query.nth, key)
			fmt.Fprintf(out, "%d: Val: %x\n", query.nth, value)
		} else {
			fmt.Fprintf(out, "nth: %d out of range\n", query.nth)
		}
	}

	if nil != query.rank {
		if rank, ok := index.RankOf(query.rank); ok {
			fmt.Fprintf(out, "rank: %x → %d\n", query.rank, rank)
		} else {
			fmt.Fprintf(out, "rank: %x not found\n", query.rank)
		}
	}

	if query.page >= 0 {
		_, err := index.Page(query.page, query.pageSize, func(rank int, key []byte, value []byte) bool {
			fmt.Fprintf(out, "%d: Key: %x\n", rank, key)
			fmt.Fprintf(out, "%d: Val: %x\n", rank, value)
			return true
		})
		if nil != err {
			return err
		}
	}

	return nil
}
