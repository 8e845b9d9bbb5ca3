// Package query implements the query-understanding pipeline: intent
// classification, entity extraction, response routing and formatting.
package query

import "strings"

// Intent represents the classified intent of a query.
type Intent string

const (
	IntentAdmission Intent = "admission"
	IntentDuration  Intent = "duration"
	IntentExam      Intent = "exam"
	IntentMerit     Intent = "merit"
	IntentBest      Intent = "best"
	IntentFeeRange  Intent = "fee_range"
	IntentGeneral   Intent = "general"
)

// IntentClassifier classifies query intent using keyword rules, checked in
// a fixed priority order.
type IntentClassifier struct {
	admissionPatterns []string
	durationPatterns  []string
	examPatterns      []string
	meritPatterns     []string
}

// NewIntentClassifier creates a new intent classifier.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		admissionPatterns: []string{
			"admission criteria",
			"admission",
		},
		durationPatterns: []string{
			"course duration",
			"duration",
		},
		examPatterns: []string{
			"entrance exam",
			"exam",
		},
		meritPatterns: []string{
			"merit",
			"jee",
			"rajasthan polytechnic",
			"rtu",
		},
	}
}

// Classify determines the intent for a question. The rule order is fixed;
// the first matching rule wins, so every input maps to exactly one intent.
// Merit and Best are recognized but carry no dedicated response path yet;
// the router handles them like General.
func (c *IntentClassifier) Classify(question string) Intent {
	q := strings.ToLower(question)

	for _, pattern := range c.admissionPatterns {
		if strings.Contains(q, pattern) {
			return IntentAdmission
		}
	}

	for _, pattern := range c.durationPatterns {
		if strings.Contains(q, pattern) {
			return IntentDuration
		}
	}

	for _, pattern := range c.examPatterns {
		if strings.Contains(q, pattern) {
			return IntentExam
		}
	}

	for _, pattern := range c.meritPatterns {
		if strings.Contains(q, pattern) {
			return IntentMerit
		}
	}

	if strings.Contains(q, "best") &&
		(strings.Contains(q, "college") || strings.Contains(q, "colleges")) {
		return IntentBest
	}

	if strings.Contains(q, "fee") && strings.Contains(q, "range") {
		return IntentFeeRange
	}

	return IntentGeneral
}
