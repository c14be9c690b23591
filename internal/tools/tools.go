// Package tools holds the typed records the LLM tool layer produces. Each
// record renders either a structured JSON dump of its fields with the
// free-text reasoning stripped, or, for clarifications, a newline-joined
// question list. That string is the whole contract the orchestration layer
// sees from a tool invocation.
package tools

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

type GeneratePlan struct {
	Reasoning        string   `json:"-"`
	ResearchGoal     string   `json:"research_goal"`
	PlannedSteps     []string `json:"planned_steps"`
	SearchStrategies []string `json:"search_strategies"`
}

func (t GeneratePlan) Result() (string, error) {
	return dump(t)
}

type AdaptPlan struct {
	Reasoning    string   `json:"-"`
	OriginalGoal string   `json:"original_goal"`
	NewGoal      string   `json:"new_goal"`
	PlanChanges  []string `json:"plan_changes"`
	NextSteps    []string `json:"next_steps"`
}

func (t AdaptPlan) Result() (string, error) {
	return dump(t)
}

type Clarification struct {
	Reasoning    string   `json:"-"`
	UnclearTerms []string `json:"unclear_terms"`
	Assumptions  []string `json:"assumptions"`
	Questions    []string `json:"questions"`
}

// Result returns the questions one per line; the other fields exist for the
// model's own bookkeeping and are not surfaced.
func (t Clarification) Result() (string, error) {
	return strings.Join(t.Questions, "\n"), nil
}

func dump(record any) (string, error) {
	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode tool record: %w", err)
	}
	return string(encoded), nil
}
