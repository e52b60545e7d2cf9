// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rankindex - load key/value records into an AVL tree so
// that they can be fetched by key or by their position in key order
//
// Keys are compared as raw bytes, which is the same ordering that
// LevelDB uses, so the rank of a key is its position in a full scan
// of the source.
package rankindex
