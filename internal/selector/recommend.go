package selector

import "github.com/prepforge/prepforge/internal/questionbank"

// Tag labels why a follow-up question was recommended.
type Tag string

const (
	// TagRemediation marks same-skill practice after a miss.
	TagRemediation Tag = "remediation"

	// TagChallenge marks harder content after a fast correct answer.
	TagChallenge Tag = "challenge"
)

const (
	maxRemediation = 3
	maxChallenge   = 2

	// fastAnswerRatio is the fraction of expected duration under which a
	// correct answer counts as fast.
	fastAnswerRatio = 0.8
)

// Recommendation pairs a follow-up question with its reason tag.
type Recommendation struct {
	Question questionbank.Question
	Tag      Tag
}

// RecommendFollowUp builds a small recommendation list after one answered
// question.
//
// Incorrect answers get up to 3 same-subject, same-skill questions tagged
// remediation, excluding the one just answered. Correct answers faster
// than 0.8x the expected duration get up to 2 questions one difficulty
// tier harder, tagged challenge. Anything else gets an empty list.
// Candidates rank by ascending TimesUsed then ID so results are
// deterministic.
func RecommendFollowUp(pool []questionbank.Question, answered questionbank.Question, wasCorrect bool, responseTimeSeconds float64) []Recommendation {
	switch {
	case !wasCorrect:
		candidates := pickCandidates(pool, questionbank.Filters{
			Subject:    answered.Subject,
			Skill:      answered.Skill,
			ExcludeIDs: []string{answered.ID},
		}, maxRemediation)
		return tag(candidates, TagRemediation)

	case responseTimeSeconds < fastAnswerRatio*float64(answered.ExpectedDurationSeconds):
		harder := answered.Difficulty.Harder()
		if harder == answered.Difficulty {
			return nil
		}
		candidates := pickCandidates(pool, questionbank.Filters{
			Subject:    answered.Subject,
			Difficulty: harder,
			ExcludeIDs: []string{answered.ID},
		}, maxChallenge)
		return tag(candidates, TagChallenge)

	default:
		return nil
	}
}

func pickCandidates(pool []questionbank.Question, filters questionbank.Filters, limit int) []questionbank.Question {
	ranked, _ := RankQuestions(pool, nil, filters)
	if limit > len(ranked) {
		limit = len(ranked)
	}
	result := make([]questionbank.Question, 0, limit)
	for _, s := range ranked[:limit] {
		result = append(result, s.Question)
	}
	return result
}

func tag(questions []questionbank.Question, t Tag) []Recommendation {
	if len(questions) == 0 {
		return nil
	}
	recs := make([]Recommendation, 0, len(questions))
	for _, q := range questions {
		recs = append(recs, Recommendation{Question: q, Tag: t})
	}
	return recs
}
