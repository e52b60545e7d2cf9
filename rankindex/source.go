// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rankindex

//go:generate mockgen -destination mocks/source.go -package mocks github.com/bitmark-inc/avltree/rankindex Source

// Source - anything that can deliver a set of key/value records
//
// the slices passed to fn may be reused after fn returns, so must be
// copied if they are to be retained
type Source interface {
	Each(fn func(key []byte, value []byte) error) error
	Close() error
}
