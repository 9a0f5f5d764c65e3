/*
 * hbconf.go, part of find-pair.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

// Package hbconf reads the parameters of a hydrogen-bond search from YAML
// files, and checks them before any search is started. A file names a
// detection preset and an optimizer preset and can override single values:
//
//	detection:
//	  preset: legacy
//	  thresholds:
//	    base-backbone: 3.6
//	optimizer:
//	  preset: optimized
//	  allow_bifurcation: false
//	strategy: slot-global
//	contexts: [base-base, base-backbone]
package hbconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	hbond "github.com/jyesselm/find-pair-sub004"
	"gopkg.in/yaml.v3"
)

// Config is the content of a configuration file. Nil pointers mean
// "keep the preset value".
type Config struct {
	Detection Detection `yaml:"detection"`
	Optimizer Optimizer `yaml:"optimizer"`
	Strategy  string    `yaml:"strategy" validate:"omitempty,oneof=slot-global global slot legacy-pairwise legacy pairwise"`
	Workers   int       `yaml:"workers" validate:"gte=0"`
	BaseOnly  bool      `yaml:"base_only"`
	Contexts  []string  `yaml:"contexts"`
}

// Detection overrides the candidate generation parameters.
type Detection struct {
	Preset                 string             `yaml:"preset" validate:"omitempty,oneof=legacy legacy-compatible modern general dssr dssr-like"`
	MinDistance            *float64           `yaml:"min_distance" validate:"omitempty,gte=0,lte=10"`
	NonStandardMaxDistance *float64           `yaml:"nonstandard_max_distance" validate:"omitempty,gt=0,lte=10"`
	Elements               []string           `yaml:"elements" validate:"omitempty,dive,oneof=N O S"`
	Thresholds             map[string]float64 `yaml:"thresholds" validate:"omitempty,dive,gt=0,lte=10"`
}

// Optimizer overrides the slot assignment parameters.
type Optimizer struct {
	Preset                  string   `yaml:"preset" validate:"omitempty,oneof=optimized default baseline legacy strict"`
	Mode                    string   `yaml:"mode" validate:"omitempty,oneof=optimized baseline"`
	MaxDistance             *float64 `yaml:"max_distance" validate:"omitempty,gt=0,lte=10"`
	ShortDistanceThreshold  *float64 `yaml:"short_distance_threshold" validate:"omitempty,gte=0,lte=10"`
	MinAlignment            *float64 `yaml:"min_alignment" validate:"omitempty,gte=0,lte=2"`
	AllowBifurcation        *bool    `yaml:"allow_bifurcation"`
	MinBifurcationAngle     *float64 `yaml:"min_bifurcation_angle" validate:"omitempty,gte=0,lte=180"`
	MinBifurcationAlignment *float64 `yaml:"min_bifurcation_alignment" validate:"omitempty,gte=0,lte=2"`
	AlignmentWeight         *float64 `yaml:"alignment_weight" validate:"omitempty,gte=0,lte=10"`
	BaselineMinDistance     *float64 `yaml:"baseline_min_distance" validate:"omitempty,gte=0,lte=10"`
	BaselineMaxDistance     *float64 `yaml:"baseline_max_distance" validate:"omitempty,gt=0,lte=10"`
}

var validate = validator.New()

// Default returns the configuration that gives the default presets.
func Default() *Config {
	return &Config{Detection: Detection{Preset: "modern"}, Optimizer: Optimizer{Preset: "optimized"}}
}

// Load reads and checks the configuration in the file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err, "Load")
	}
	C, err := Parse(data)
	if err != nil {
		return nil, errDecorate(err, "Load "+path)
	}
	return C, nil
}

// Parse reads a configuration from YAML data and checks it. Unknown keys are
// an error. Empty data gives the default configuration.
func Parse(data []byte) (*Config, error) {
	C := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(C); err != nil && !errors.Is(err, io.EOF) {
		return nil, wrap(err, "Parse")
	}
	if err := C.Validate(); err != nil {
		return nil, errDecorate(err, "Parse")
	}
	return C, nil
}

// Validate checks the ranges of every value and the consistency between them.
func (C *Config) Validate() error {
	if err := validate.Struct(C); err != nil {
		return wrap(err, "Validate")
	}
	det, err := C.DetectionParams()
	if err != nil {
		return errDecorate(err, "Validate")
	}
	for c := hbond.Context(0); c < hbond.NumContexts; c++ {
		if det.Ceiling(c) < det.MinDistance {
			return newError(fmt.Sprintf("ceiling of %s (%.2f) below the minimum distance (%.2f)", c, det.Ceiling(c), det.MinDistance), "Validate")
		}
	}
	opt, err := C.OptimizerParams()
	if err != nil {
		return errDecorate(err, "Validate")
	}
	if opt.BaselineMinDistance > opt.BaselineMaxDistance {
		return newError("baseline minimum distance above the maximum", "Validate")
	}
	if opt.ShortDistanceThreshold > opt.MaxDistance {
		return newError("short distance threshold above the maximum distance", "Validate")
	}
	if _, err := C.Filter(); err != nil {
		return errDecorate(err, "Validate")
	}
	return nil
}

// DetectionParams returns the detection preset with the overrides applied.
func (C *Config) DetectionParams() (hbond.HBondDetectionParams, error) {
	P, ok := hbond.DetectionPreset(C.Detection.Preset)
	if !ok {
		return P, newError(fmt.Sprintf("unknown detection preset %q", C.Detection.Preset), "DetectionParams")
	}
	D := C.Detection
	if D.MinDistance != nil {
		P.MinDistance = *D.MinDistance
	}
	if D.NonStandardMaxDistance != nil {
		P.NonStandardMaxDistance = *D.NonStandardMaxDistance
	}
	if len(D.Elements) > 0 {
		P.Elements = append([]string(nil), D.Elements...)
	}
	for name, v := range D.Thresholds {
		c, ok := hbond.ParseContext(name)
		if !ok {
			return P, newError(fmt.Sprintf("unknown context %q in thresholds", name), "DetectionParams")
		}
		P.Thresholds[c] = v
	}
	return P, nil
}

// OptimizerParams returns the optimizer preset with the overrides applied.
func (C *Config) OptimizerParams() (hbond.SlotOptimizerParams, error) {
	P, ok := hbond.OptimizerPreset(C.Optimizer.Preset)
	if !ok {
		return P, newError(fmt.Sprintf("unknown optimizer preset %q", C.Optimizer.Preset), "OptimizerParams")
	}
	O := C.Optimizer
	switch strings.ToLower(O.Mode) {
	case "optimized":
		P.Mode = hbond.Optimized
	case "baseline":
		P.Mode = hbond.Baseline
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&P.MaxDistance, O.MaxDistance)
	set(&P.ShortDistanceThreshold, O.ShortDistanceThreshold)
	set(&P.MinAlignment, O.MinAlignment)
	set(&P.MinBifurcationAngle, O.MinBifurcationAngle)
	set(&P.MinBifurcationAlignment, O.MinBifurcationAlignment)
	set(&P.AlignmentWeight, O.AlignmentWeight)
	set(&P.BaselineMinDistance, O.BaselineMinDistance)
	set(&P.BaselineMaxDistance, O.BaselineMaxDistance)
	if O.AllowBifurcation != nil {
		P.AllowBifurcation = *O.AllowBifurcation
	}
	return P, nil
}

// Filter returns the interaction filter for the configured contexts.
func (C *Config) Filter() (*hbond.InteractionFilter, error) {
	F, err := hbond.ParseInteractionFilter(strings.Join(C.Contexts, ","))
	if err != nil {
		return nil, wrap(err, "Filter")
	}
	return F, nil
}

// Finder returns a Finder set up with the configuration.
func (C *Config) Finder() (*hbond.Finder, error) {
	det, err := C.DetectionParams()
	if err != nil {
		return nil, errDecorate(err, "Finder")
	}
	opt, err := C.OptimizerParams()
	if err != nil {
		return nil, errDecorate(err, "Finder")
	}
	s, ok := hbond.ParseStrategy(C.Strategy)
	if !ok {
		return nil, newError(fmt.Sprintf("unknown strategy %q", C.Strategy), "Finder")
	}
	return &hbond.Finder{Detection: det, Optimizer: opt, Strategy: s, Workers: C.Workers, BaseOnly: C.BaseOnly}, nil
}

// Error is the error type of the package.
type Error struct {
	msg   string
	deco  []string
	cause error
}

func newError(msg, caller string) *Error {
	return &Error{msg: msg, deco: []string{caller}}
}

func wrap(cause error, caller string) *Error {
	return &Error{msg: cause.Error(), deco: []string{caller}, cause: cause}
}

func (E *Error) Error() string {
	return fmt.Sprintf("hbconf: %s (%s)", E.msg, strings.Join(E.deco, " <- "))
}

// Decorate adds dec to the list of functions the error went through.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// Unwrap returns the underlying error, if any.
func (E *Error) Unwrap() error { return E.cause }

func errDecorate(err error, caller string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(caller)
	}
	return err
}
