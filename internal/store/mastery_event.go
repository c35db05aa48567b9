package store

import (
	"context"
	"fmt"

	"github.com/prepforge/prepforge/ent"
	"github.com/prepforge/prepforge/ent/masteryevent"
)

func (r *eventRepo) AppendMastery(ctx context.Context, rec MasteryRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetUserID(rec.UserID).
		SetSubject(rec.Subject).
		SetSkill(rec.Skill).
		SetProbability(rec.Probability).
		SetCorrect(rec.Correct)

	if rec.QuestionID != "" {
		builder = builder.SetQuestionID(rec.QuestionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

// LatestMastery folds the user's mastery log in sequence order, keeping
// the newest probability per (subject, skill). With opts.After set, only
// events past that sequence are scanned.
func (r *eventRepo) LatestMastery(ctx context.Context, userID string, opts QueryOpts) ([]MasteryRecord, error) {
	query := r.client.MasteryEvent.Query().
		Where(masteryevent.UserIDEQ(userID)).
		Order(ent.Asc(masteryevent.FieldSequence))
	if opts.After > 0 {
		query = query.Where(masteryevent.SequenceGT(opts.After))
	}
	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}

	type key struct{ subject, skill string }
	latest := make(map[key]MasteryRecord)
	var order []key

	for _, e := range events {
		k := key{subject: e.Subject, skill: e.Skill}
		if _, seen := latest[k]; !seen {
			order = append(order, k)
		}
		latest[k] = MasteryRecord{
			Sequence:    e.Sequence,
			UserID:      e.UserID,
			Subject:     e.Subject,
			Skill:       e.Skill,
			Probability: e.Probability,
			Correct:     e.Correct,
			QuestionID:  e.QuestionID,
		}
	}

	records := make([]MasteryRecord, 0, len(order))
	for _, k := range order {
		records = append(records, latest[k])
	}
	return records, nil
}
