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

// Package config declares the saturation run's tunable options (spec.md §6)
// and the loaders that populate them from YAML documents or loosely-typed
// override maps.
package config

// Options mirrors the option table of spec.md §6, one field per row.
type Options struct {
	Ordering string `yaml:"ordering"` // "kbo" | "lpo"

	AgeWeightRatioAge    int `yaml:"age_weight_ratio_age"`
	AgeWeightRatioWeight int `yaml:"age_weight_ratio_weight"`
	// Selection names the literal selection function applied when a clause
	// enters Active (spec §4.5): "off" (every literal eligible), "negative"
	// (every negative literal), or "negative_maximal" (only the
	// ordering-maximal negative literal(s)).
	Selection string `yaml:"selection"`

	BinaryResolution bool `yaml:"binary_resolution"`
	Superposition    bool `yaml:"superposition"`

	// ForwardDemodulation and BackwardDemodulation each take one of "off",
	// "preordered" (only equations the active ordering can orient without a
	// substitution are used as rewrite rules) or "all" (additionally allow
	// equations orientable only after the match substitution is applied,
	// subject to a post-match ordering/weight check).
	ForwardDemodulation          string `yaml:"forward_demodulation"`
	BackwardDemodulation         string `yaml:"backward_demodulation"`
	ForwardSubsumption           bool   `yaml:"forward_subsumption"`
	ForwardSubsumptionResolution bool   `yaml:"forward_subsumption_resolution"`
	BackwardSubsumption          bool   `yaml:"backward_subsumption"`

	SplitAt int `yaml:"split_at"`

	Induction                     bool `yaml:"induction"`
	InductionStrengthenHypothesis bool `yaml:"induction_strengthen_hypothesis"`
	InductionGen                  bool `yaml:"induction_gen"`
	InductionOnComplexTerms       bool `yaml:"induction_on_complex_terms"`
	NonUnitInduction              bool `yaml:"non_unit_induction"`

	IntInductionInterval        string `yaml:"int_induction_interval"` // "infinite" | "finite"
	IntInductionStrictnessEq    string `yaml:"int_induction_strictness_eq"`
	IntInductionStrictnessComp  string `yaml:"int_induction_strictness_comp"`
	IntInductionStrictnessTerm  string `yaml:"int_induction_strictness_term"`

	// InductionRewritingVariant picks the single induction-hypothesis
	// rewriting mechanism this implementation supports; see DESIGN.md's
	// resolution of the corresponding Open Question.
	InductionRewritingVariant string `yaml:"induction_rewriting_variant"`
}

// Default returns the option set the teacher's engine would hand a fresh
// session before any override is applied: KBO ordering, a 1:1 age/weight
// rotation, every redundancy-elimination rule on except forward
// subsumption resolution, induction off (the
// heavier, opt-in rule family per spec §6).
func Default() Options {
	return Options{
		Ordering:                     "kbo",
		AgeWeightRatioAge:            1,
		AgeWeightRatioWeight:         1,
		Selection:                    "off",
		BinaryResolution:             true,
		Superposition:                true,
		ForwardDemodulation:          "preordered",
		BackwardDemodulation:         "preordered",
		ForwardSubsumption:           true,
		ForwardSubsumptionResolution: false,
		BackwardSubsumption:          true,
		SplitAt:                      0,
		Induction:                    false,
		InductionGen:                 false,
		IntInductionInterval:         "infinite",
		IntInductionStrictnessEq:     "none",
		IntInductionStrictnessComp:   "none",
		IntInductionStrictnessTerm:   "none",
		InductionRewritingVariant:    "InductionRewriting",
	}
}
