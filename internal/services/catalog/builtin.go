package catalog

import "github.com/mathrace/mathrace-go/internal/model"

// Built-in question sets available to every host without authentication.
// These are process-wide constants; sessions always copy questions by value,
// so nothing can mutate them through a session.
var builtinSets = []*model.QuestionSet{
	{
		ID:          "basic-arithmetic",
		Name:        "Basic Arithmetic",
		Description: "Mixed addition, subtraction, multiplication and division",
		Questions: []model.Question{
			{Prompt: "15 + 27", Answer: 42},
			{Prompt: "-8 × 9", Answer: -72},
			{Prompt: "100 - 43", Answer: 57},
			{Prompt: "144 ÷ 12", Answer: 12},
			{Prompt: "23 + 56", Answer: 79},
			{Prompt: "7 × 8", Answer: 56},
			{Prompt: "91 - 38", Answer: 53},
			{Prompt: "81 ÷ -9", Answer: -9},
			{Prompt: "34 + 29", Answer: 63},
			{Prompt: "12 × 5", Answer: 60},
		},
	},
}

// builtinByID returns the built-in set with the given id, or nil
func builtinByID(id model.QuestionSetID) *model.QuestionSet {
	for _, set := range builtinSets {
		if set.ID == id {
			return set
		}
	}
	return nil
}
