package questionbank

// seedQuestions is the bundled starter pool: 24 questions across the
// three subjects, enough for offline practice before the caller wires a
// real content source.
var seedQuestions = []Question{
	// Math: linear equations (3)
	{ID: "m-lin-001", Subject: SubjectMath, Skill: "linear-equations", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 60, Type: TypeMultipleChoice},
	{ID: "m-lin-002", Subject: SubjectMath, Skill: "linear-equations", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 75, Type: TypeNumericResponse},
	{ID: "m-lin-003", Subject: SubjectMath, Skill: "linear-equations", Difficulty: DifficultyHard, ExpectedDurationSeconds: 120, Type: TypeNumericResponse},

	// Math: quadratics (3)
	{ID: "m-quad-001", Subject: SubjectMath, Skill: "quadratics", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 70, Type: TypeMultipleChoice},
	{ID: "m-quad-002", Subject: SubjectMath, Skill: "quadratics", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 90, Type: TypeMultipleChoice},
	{ID: "m-quad-003", Subject: SubjectMath, Skill: "quadratics", Difficulty: DifficultyHard, ExpectedDurationSeconds: 150, Type: TypeNumericResponse},

	// Math: data analysis (3)
	{ID: "m-data-001", Subject: SubjectMath, Skill: "data-analysis", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 55, Type: TypeMultipleChoice},
	{ID: "m-data-002", Subject: SubjectMath, Skill: "data-analysis", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 80, Type: TypeMultipleChoice},
	{ID: "m-data-003", Subject: SubjectMath, Skill: "data-analysis", Difficulty: DifficultyHard, ExpectedDurationSeconds: 130, Type: TypeNumericResponse},

	// Math: geometry (3)
	{ID: "m-geo-001", Subject: SubjectMath, Skill: "geometry", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 60, Type: TypeMultipleChoice},
	{ID: "m-geo-002", Subject: SubjectMath, Skill: "geometry", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 90, Type: TypeNumericResponse},
	{ID: "m-geo-003", Subject: SubjectMath, Skill: "geometry", Difficulty: DifficultyHard, ExpectedDurationSeconds: 140, Type: TypeNumericResponse},

	// Reading: main idea (3)
	{ID: "r-main-001", Subject: SubjectReading, Skill: "main-idea", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 80, Type: TypeTextAnalysis},
	{ID: "r-main-002", Subject: SubjectReading, Skill: "main-idea", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 100, Type: TypeTextAnalysis},
	{ID: "r-main-003", Subject: SubjectReading, Skill: "main-idea", Difficulty: DifficultyHard, ExpectedDurationSeconds: 150, Type: TypeTextAnalysis},

	// Reading: evidence (3)
	{ID: "r-evid-001", Subject: SubjectReading, Skill: "evidence", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 85, Type: TypeMultipleChoice},
	{ID: "r-evid-002", Subject: SubjectReading, Skill: "evidence", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 110, Type: TypeTextAnalysis},
	{ID: "r-evid-003", Subject: SubjectReading, Skill: "evidence", Difficulty: DifficultyHard, ExpectedDurationSeconds: 160, Type: TypeTextAnalysis},

	// Reading: vocabulary in context (2)
	{ID: "r-vocab-001", Subject: SubjectReading, Skill: "vocab-in-context", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 45, Type: TypeMultipleChoice},
	{ID: "r-vocab-002", Subject: SubjectReading, Skill: "vocab-in-context", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 60, Type: TypeMultipleChoice},

	// Writing: grammar (2)
	{ID: "w-gram-001", Subject: SubjectWriting, Skill: "grammar", Difficulty: DifficultyEasy, ExpectedDurationSeconds: 40, Type: TypeMultipleChoice},
	{ID: "w-gram-002", Subject: SubjectWriting, Skill: "grammar", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 55, Type: TypeMultipleChoice},

	// Writing: rhetoric (2)
	{ID: "w-rhet-001", Subject: SubjectWriting, Skill: "rhetoric", Difficulty: DifficultyMedium, ExpectedDurationSeconds: 80, Type: TypeTextAnalysis},
	{ID: "w-rhet-002", Subject: SubjectWriting, Skill: "rhetoric", Difficulty: DifficultyHard, ExpectedDurationSeconds: 120, Type: TypeTextAnalysis},
}

// SeedPool returns a StaticPool over the bundled starter questions.
func SeedPool() *StaticPool {
	return NewStaticPool(seedQuestions)
}
