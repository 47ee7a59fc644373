// Copyright 2024 The Saturn Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runctx

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var statsBucket = []byte("statistics")

// Checkpointer periodically persists a run's Statistics to an embedded bolt
// file for external monitoring, purely observational: spec §6 "Persisted
// state: none required by the core" still holds, since nothing here is ever
// read back into a running saturation loop.
type Checkpointer struct {
	db *bolt.DB
}

// OpenCheckpointer opens (creating if absent) a bolt file at path.
func OpenCheckpointer(path string) (*Checkpointer, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "opening statistics checkpoint file")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(statsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating statistics bucket")
	}
	return &Checkpointer{db: db}, nil
}

// Close releases the underlying bolt file.
func (c *Checkpointer) Close() error { return c.db.Close() }

// Checkpoint writes runID's current statistics snapshot under its own key,
// overwriting any prior checkpoint for that run.
func (c *Checkpointer) Checkpoint(runID string, stats Statistics) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(statsBucket)
		return b.Put([]byte(runID), encodeStatistics(stats))
	})
}

func encodeStatistics(s Statistics) []byte {
	buf := make([]byte, 8*6)
	binary.BigEndian.PutUint64(buf[0:], s.ClausesGenerated)
	binary.BigEndian.PutUint64(buf[8:], s.ClausesRetained)
	binary.BigEndian.PutUint64(buf[16:], s.ClausesSimplified)
	binary.BigEndian.PutUint64(buf[24:], s.ClausesDeleted)
	binary.BigEndian.PutUint64(buf[32:], s.LimitChecks)
	binary.BigEndian.PutUint64(buf[40:], s.GivenClauseLoops)
	return buf
}
