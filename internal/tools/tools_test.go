package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlanResultOmitsReasoning(t *testing.T) {
	t.Parallel()

	record := GeneratePlan{
		Reasoning:        "internal chain of thought",
		ResearchGoal:     "map pharma distributors in central asia",
		PlannedSteps:     []string{"collect candidate experts", "filter by availability"},
		SearchStrategies: []string{"by industry", "by geography"},
	}

	out, err := record.Result()
	require.NoError(t, err)

	assert.Contains(t, out, `"research_goal"`)
	assert.Contains(t, out, "map pharma distributors in central asia")
	assert.Contains(t, out, "filter by availability")
	assert.NotContains(t, out, "internal chain of thought")
}

func TestAdaptPlanResultIsIndentedJSON(t *testing.T) {
	t.Parallel()

	record := AdaptPlan{
		OriginalGoal: "broad expert scan",
		NewGoal:      "narrow to contract experts",
		PlanChanges:  []string{"drop geography filter"},
		NextSteps:    []string{"rerun the search"},
	}

	out, err := record.Result()
	require.NoError(t, err)

	assert.Contains(t, out, "{\n  \"original_goal\"")
	assert.Contains(t, out, `"narrow to contract experts"`)
}

func TestClarificationResultJoinsQuestions(t *testing.T) {
	t.Parallel()

	record := Clarification{
		Reasoning:    "ambiguity in request",
		UnclearTerms: []string{"recent"},
		Questions:    []string{"Which time range counts as recent?", "Should archived experts be included?"},
	}

	out, err := record.Result()
	require.NoError(t, err)

	assert.Equal(t, "Which time range counts as recent?\nShould archived experts be included?", out)
}

func TestClarificationResultEmptyQuestions(t *testing.T) {
	t.Parallel()

	out, err := Clarification{}.Result()
	require.NoError(t, err)
	assert.Empty(t, out)
}
