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

// Package runctx threads the per-run resources (options, logging, clock,
// limits, statistics) that used to be process-wide globals in the original
// implementation (spec.md §9 design note on run context).
package runctx

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrOrderingIncomparable describes a positive equality literal the
	// ordering reports Incomparable for. No rule in this module returns it:
	// the rules skip, or try both sides of, an equation they cannot orient.
	ErrOrderingIncomparable = errors.NewKind("ordering could not orient equation in clause %d")

	// ErrLimitReached is raised by the saturation loop when a cooperative
	// time or memory checkpoint trips (spec §5).
	ErrLimitReached = errors.NewKind("run %s exceeded its %s limit")

	// ErrUnknownOption describes an option name config.Options does not
	// have. The config loaders do not return it: FromYAML and
	// ApplyOverrides both ignore unknown keys.
	ErrUnknownOption = errors.NewKind("unknown option %q")
)
