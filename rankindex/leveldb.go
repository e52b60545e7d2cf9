// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rankindex

import (
	"fmt"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/fault"
)

// LevelDBSource - read only access to the records of a LevelDB
// database that start with a common prefix
type LevelDBSource struct {
	prefix   []byte
	database *leveldb.DB
}

// OpenLevelDB - open an existing database directory in read only mode
//
// an empty prefix selects every record
func OpenLevelDB(directory string, prefix []byte) (*LevelDBSource, error) {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotFoundDatabase, directory)
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: true,
		ReadOnly:       true,
	}
	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}

	p := make([]byte, len(prefix))
	copy(p, prefix)

	return &LevelDBSource{
		prefix:   p,
		database: db,
	}, nil
}

// Each - call fn for every record in key order with the prefix
// removed from the key, stops at the first error
func (s *LevelDBSource) Each(fn func(key []byte, value []byte) error) error {
	if nil == s.database {
		return fault.ErrNilSource
	}

	iter := s.database.NewIterator(ldb_util.BytesPrefix(s.prefix), nil)
	defer iter.Release()

	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		if err := fn(iter.Key()[len(s.prefix):], iter.Value()); nil != err {
			return err
		}
	}
	return iter.Error()
}

// Close - release the database
func (s *LevelDBSource) Close() error {
	if nil == s.database {
		return nil
	}
	err := s.database.Close()
	s.database = nil
	return err
}
