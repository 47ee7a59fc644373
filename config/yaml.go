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

package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// FromYAML parses doc into a fresh Options, starting from Default() so a
// partial document only overrides the fields it mentions.
func FromYAML(doc []byte) (Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(doc, &opts); err != nil {
		return Options{}, errors.Wrap(err, "parsing saturation options")
	}
	return opts, nil
}

// ApplyOverrides coerces a loosely-typed override map (e.g. from a flag set
// or environment, as the teacher's session variables arrive) onto opts,
// mutating it in place. Unknown keys are ignored: an override source may
// legitimately carry keys this engine version does not understand.
func ApplyOverrides(opts *Options, overrides map[string]interface{}) error {
	for k, v := range overrides {
		switch k {
		case "ordering":
			opts.Ordering = cast.ToString(v)
		case "age_weight_ratio_age":
			opts.AgeWeightRatioAge = cast.ToInt(v)
		case "age_weight_ratio_weight":
			opts.AgeWeightRatioWeight = cast.ToInt(v)
		case "selection":
			opts.Selection = cast.ToString(v)
		case "binary_resolution":
			opts.BinaryResolution = cast.ToBool(v)
		case "superposition":
			opts.Superposition = cast.ToBool(v)
		case "forward_demodulation":
			opts.ForwardDemodulation = cast.ToString(v)
		case "backward_demodulation":
			opts.BackwardDemodulation = cast.ToString(v)
		case "forward_subsumption":
			opts.ForwardSubsumption = cast.ToBool(v)
		case "forward_subsumption_resolution":
			opts.ForwardSubsumptionResolution = cast.ToBool(v)
		case "backward_subsumption":
			opts.BackwardSubsumption = cast.ToBool(v)
		case "split_at":
			opts.SplitAt = cast.ToInt(v)
		case "induction":
			opts.Induction = cast.ToBool(v)
		case "induction_strengthen_hypothesis":
			opts.InductionStrengthenHypothesis = cast.ToBool(v)
		case "induction_gen":
			opts.InductionGen = cast.ToBool(v)
		case "induction_on_complex_terms":
			opts.InductionOnComplexTerms = cast.ToBool(v)
		case "non_unit_induction":
			opts.NonUnitInduction = cast.ToBool(v)
		case "int_induction_interval":
			opts.IntInductionInterval = cast.ToString(v)
		case "int_induction_strictness_eq":
			opts.IntInductionStrictnessEq = cast.ToString(v)
		case "int_induction_strictness_comp":
			opts.IntInductionStrictnessComp = cast.ToString(v)
		case "int_induction_strictness_term":
			opts.IntInductionStrictnessTerm = cast.ToString(v)
		case "induction_rewriting_variant":
			opts.InductionRewritingVariant = cast.ToString(v)
		}
	}
	return nil
}
