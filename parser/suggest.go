package parser

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// closestMatch returns the candidate nearest to name, or "" when none is close
func closestMatch(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// didYouMean formats a suggestion suffix for an error message
func didYouMean(name string, candidates []string) string {
	if m := closestMatch(name, candidates); m != "" && m != name {
		return "; did you mean " + m + "?"
	}
	return ""
}

// opNameList lists every operator node name
func opNameList() []string {
	return opNames[OP_ILLEGAL+1:]
}

func compareOpNames() []string {
	return opNames[OP_EQ : OP_NOTIN+1]
}
