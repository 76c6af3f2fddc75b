/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detect.go
Description: Convenience entry point for the DateSense format detector.
Wires the tokenizer, candidate model, culling passes, rule engine and
duplicate resolver into a single detection pipeline with sensible defaults.
*/

package detect

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/datesense/pkg/catalog"
	"github.com/kleascm/datesense/pkg/model"
	"github.com/kleascm/datesense/pkg/rules"
	"github.com/kleascm/datesense/pkg/token"
)

// Config customizes a detection session. Zero-value fields fall back to the
// built-in catalogs and rule set, so Config{} behaves like Detect.
type Config struct {
	// Rules applied in order after culling. Defaults to rules.DefaultRules().
	Rules []model.Rule
	// NumericOptions is the numeric directive catalog.
	// Defaults to catalog.DefaultNumericOptions().
	NumericOptions []*catalog.NumericOption
	// WordOptions is the alphabetical directive catalog.
	// Defaults to catalog.DefaultWordOptions().
	WordOptions []*catalog.WordOption
	// TimezoneDirective stands in for offset tokens like +0100.
	// Defaults to catalog.TimezoneDirective.
	TimezoneDirective string
	// Logger, when set, receives pipeline progress at debug level.
	Logger logrus.FieldLogger
}

// Detect infers the directive-based format shared by the sample date
// strings, using the default catalogs and rules. A single sample works but
// leaves more ambiguity than several samples with distinct values.
func Detect(samples ...string) *Result {
	return DetectWithConfig(samples, Config{})
}

// DetectWithConfig runs the detection pipeline over the samples with the
// given configuration. The pipeline is total: any input, including no
// samples at all, yields a Result (possibly an unrecognized one).
func DetectWithConfig(samples []string, cfg Config) *Result {
	if cfg.Rules == nil {
		cfg.Rules = rules.DefaultRules()
	}
	if cfg.NumericOptions == nil {
		cfg.NumericOptions = catalog.DefaultNumericOptions()
	}
	if cfg.WordOptions == nil {
		cfg.WordOptions = catalog.DefaultWordOptions()
	}
	if cfg.TimezoneDirective == "" {
		cfg.TimezoneDirective = catalog.DefaultTimezoneDirective()
	}

	id := uuid.New().String()
	log := cfg.Logger
	if log != nil {
		log = log.WithField("session_id", id)
	}

	reference := ""
	if len(samples) > 0 {
		reference = samples[0]
	}
	tokens := token.Tokenize(reference)
	if log != nil {
		log.WithFields(logrus.Fields{
			"samples":   len(samples),
			"positions": len(tokens),
		}).Debug("Reference sample tokenized")
	}

	m := model.New(tokens, cfg.NumericOptions, cfg.WordOptions, cfg.TimezoneDirective)
	m.CullSamples(samples)
	m.CullLiterals()
	if log != nil {
		log.Debug("Candidates culled across samples")
	}

	m.ApplyRules(cfg.Rules)
	m.PenalizeDuplicates(model.DefaultDuplicatePenalty)
	if log != nil {
		log.WithField("rules", len(cfg.Rules)).Debug("Rule scoring complete")
	}

	return &Result{ID: id, model: m}
}
