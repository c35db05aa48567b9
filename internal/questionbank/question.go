// Package questionbank defines the static question content model and the
// pool interface the selector ranks over. Questions are authored
// externally; this package never creates or destroys them.
package questionbank

// Subject is a top-level content domain.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectReading Subject = "reading"
	SubjectWriting Subject = "writing"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMath, SubjectReading, SubjectWriting}
}

// DisplayName returns a human-readable label for the subject.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectMath:
		return "Math"
	case SubjectReading:
		return "Reading"
	case SubjectWriting:
		return "Writing & Language"
	default:
		return string(s)
	}
}

// Difficulty is a question's categorical difficulty band.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Midpoint maps the categorical band to its numeric midpoint on the
// 0-1 challenge scale used by the selector.
func (d Difficulty) Midpoint() float64 {
	switch d {
	case DifficultyEasy:
		return 0.3
	case DifficultyMedium:
		return 0.6
	case DifficultyHard:
		return 0.9
	default:
		return 0.6
	}
}

// Harder returns the next difficulty band up, capped at hard.
func (d Difficulty) Harder() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// QuestionType describes how the learner answers.
type QuestionType string

const (
	TypeMultipleChoice  QuestionType = "multiple-choice"
	TypeNumericResponse QuestionType = "numeric-response"
	TypeTextAnalysis    QuestionType = "text-analysis"
)

// Question is an immutable content record. TimesUsed is the one mutable
// counter and is owned by the caller's persistence, not by this package.
type Question struct {
	ID                      string
	Subject                 Subject
	Skill                   string
	Difficulty              Difficulty
	ExpectedDurationSeconds int
	TimesUsed               int
	Type                    QuestionType
}
