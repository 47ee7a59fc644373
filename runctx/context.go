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
	"time"

	"github.com/sirupsen/logrus"
	uuid "github.com/satori/go.uuid"

	"github.com/satforge/saturn/config"
)

// Clock is the injectable time source the loop's cooperative checkpoints
// read from (spec §5); tests substitute a fake to drive deterministic
// time-limit scenarios.
type Clock func() time.Time

// Limits bounds one run (spec §5 "time and memory limits, checked
// cooperatively between inference steps").
type Limits struct {
	WallClock time.Duration // zero means unbounded
	MaxBytes  uint64        // zero means unbounded
}

// RunContext is the threaded replacement for the process-wide singletons
// (signature table, global options, global statistics) the original
// implementation keeps: one instance per saturation run.
type RunContext struct {
	ID      uuid.UUID
	Log     *logrus.Entry
	Options config.Options
	Stats   *Statistics
	Clock   Clock
	Limits  Limits

	startedAt time.Time
}

// New creates a fresh RunContext with its own id, a logger fielded with that
// id, and zeroed statistics.
func New(opts config.Options, limits Limits) *RunContext {
	id := uuid.NewV4()
	base := logrus.New()
	entry := base.WithField("run_id", id.String())
	rc := &RunContext{ID: id, Log: entry, Options: opts, Stats: NewStatistics(), Clock: time.Now, Limits: limits}
	rc.startedAt = rc.Clock()
	return rc
}

// Elapsed reports how long the run has been executing according to Clock.
func (rc *RunContext) Elapsed() time.Duration { return rc.Clock().Sub(rc.startedAt) }

// CheckLimits reports ErrLimitReached if the wall-clock budget (when set)
// has been exceeded; called at the cooperative checkpoints of spec §5.
// Memory limits are the caller's responsibility to sample (Go offers no
// synchronous allocation hook) and are reported the same way by whoever
// calls CheckMemory.
func (rc *RunContext) CheckLimits() error {
	if rc.Limits.WallClock > 0 && rc.Elapsed() > rc.Limits.WallClock {
		return ErrLimitReached.New(rc.ID.String(), "time")
	}
	return nil
}

// CheckMemory reports ErrLimitReached if bytesInUse exceeds the configured
// budget.
func (rc *RunContext) CheckMemory(bytesInUse uint64) error {
	if rc.Limits.MaxBytes > 0 && bytesInUse > rc.Limits.MaxBytes {
		return ErrLimitReached.New(rc.ID.String(), "memory")
	}
	return nil
}
