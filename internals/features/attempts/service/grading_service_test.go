// file: internals/features/attempts/service/grading_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	examModel "quizforge_backend/internals/features/exams/model"
)

func strp(s string) *string { return &s }

func mcQuestion(points int, correct string, options ...string) examModel.QuestionModel {
	return examModel.QuestionModel{
		QuestionID:            uuid.New(),
		QuestionType:          examModel.QuestionTypeMultipleChoice,
		QuestionPrompt:        "pick one",
		QuestionOptions:       options,
		QuestionCorrectAnswer: strp(correct),
		QuestionPoints:        points,
	}
}

func TestGradeSubmission_AllCorrect(t *testing.T) {
	qs := []examModel.QuestionModel{
		mcQuestion(2, "B", "A", "B", "C"),
		{
			QuestionID:            uuid.New(),
			QuestionType:          examModel.QuestionTypeTrueFalse,
			QuestionPrompt:        "water is wet",
			QuestionCorrectAnswer: strp("true"),
			QuestionPoints:        3,
		},
		{
			QuestionID:            uuid.New(),
			QuestionType:          examModel.QuestionTypeShortAnswer,
			QuestionPrompt:        "capital of france",
			QuestionCorrectAnswer: strp("Paris"),
			QuestionPoints:        5,
		},
	}
	answers := map[uuid.UUID]string{
		qs[0].QuestionID: "B",
		qs[1].QuestionID: "true",
		qs[2].QuestionID: "Paris",
	}

	res := GradeSubmission(qs, answers)
	if res.Score != 10 || res.MaxScore != 10 {
		t.Fatalf("score = %d/%d, want 10/10", res.Score, res.MaxScore)
	}
	if res.Percentage != 100 {
		t.Fatalf("percentage = %d, want 100", res.Percentage)
	}
	for _, a := range res.Answers {
		if a.IsCorrect == nil || !*a.IsCorrect {
			t.Fatalf("answer %s not marked correct", a.QuestionID)
		}
	}
}

func TestGradeSubmission_ShortAnswerNormalization(t *testing.T) {
	q := examModel.QuestionModel{
		QuestionID:            uuid.New(),
		QuestionType:          examModel.QuestionTypeShortAnswer,
		QuestionPrompt:        "capital of france",
		QuestionCorrectAnswer: strp("Paris"),
		QuestionPoints:        4,
	}

	cases := []struct {
		name  string
		given string
		want  bool
	}{
		{"exact", "Paris", true},
		{"lowercase", "paris", true},
		{"uppercase", "PARIS", true},
		{"surrounding whitespace", "  Paris\t", true},
		{"both", "  pArIs ", true},
		{"wrong word", "Lyon", false},
		{"inner whitespace differs", "Pa ris", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := GradeSubmission(
				[]examModel.QuestionModel{q},
				map[uuid.UUID]string{q.QuestionID: tc.given},
			)
			got := res.Score == q.QuestionPoints
			if got != tc.want {
				t.Fatalf("given %q: correct = %v, want %v", tc.given, got, tc.want)
			}
		})
	}
}

func TestGradeSubmission_TrueFalseIsExact(t *testing.T) {
	q := examModel.QuestionModel{
		QuestionID:            uuid.New(),
		QuestionType:          examModel.QuestionTypeTrueFalse,
		QuestionPrompt:        "water is wet",
		QuestionCorrectAnswer: strp("true"),
		QuestionPoints:        1,
	}

	cases := []struct {
		name  string
		given string
		want  bool
	}{
		{"exact", "true", true},
		{"uppercase", "TRUE", false},
		{"mixed case", "True", false},
		{"surrounding whitespace", " true ", false},
		{"opposite", "false", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := GradeSubmission(
				[]examModel.QuestionModel{q},
				map[uuid.UUID]string{q.QuestionID: tc.given},
			)
			got := res.Score == q.QuestionPoints
			if got != tc.want {
				t.Fatalf("given %q: correct = %v, want %v", tc.given, got, tc.want)
			}
		})
	}
}

func TestGradeSubmission_MultipleChoiceIsExact(t *testing.T) {
	q := mcQuestion(1, "Paris", "Paris", "paris ", "Lyon")
	res := GradeSubmission(
		[]examModel.QuestionModel{q},
		map[uuid.UUID]string{q.QuestionID: "paris"},
	)
	if res.Score != 0 {
		t.Fatalf("multiple_choice must compare exact strings, got score %d", res.Score)
	}
}

func TestGradeSubmission_EssayNeverAutoGraded(t *testing.T) {
	essay := examModel.QuestionModel{
		QuestionID:     uuid.New(),
		QuestionType:   examModel.QuestionTypeEssay,
		QuestionPrompt: "discuss",
		QuestionPoints: 10,
	}
	mc := mcQuestion(5, "A", "A", "B")

	res := GradeSubmission(
		[]examModel.QuestionModel{essay, mc},
		map[uuid.UUID]string{
			essay.QuestionID: "a long and thoughtful response",
			mc.QuestionID:    "A",
		},
	)

	// essay counts toward the maximum but awards nothing automatically
	if res.MaxScore != 15 {
		t.Fatalf("max_score = %d, want 15", res.MaxScore)
	}
	if res.Score != 5 {
		t.Fatalf("score = %d, want 5", res.Score)
	}
	for _, a := range res.Answers {
		if a.QuestionID == essay.QuestionID {
			if a.IsCorrect != nil {
				t.Fatalf("essay is_correct = %v, want nil", *a.IsCorrect)
			}
			if a.PointsAwarded != 0 {
				t.Fatalf("essay points_awarded = %d, want 0", a.PointsAwarded)
			}
		}
	}
}

func TestGradeSubmission_UnansweredCountTowardMax(t *testing.T) {
	q1 := mcQuestion(3, "A", "A", "B")
	q2 := mcQuestion(7, "B", "A", "B")

	res := GradeSubmission(
		[]examModel.QuestionModel{q1, q2},
		map[uuid.UUID]string{q1.QuestionID: "A"},
	)
	if res.MaxScore != 10 {
		t.Fatalf("max_score = %d, want 10", res.MaxScore)
	}
	if res.Score != 3 {
		t.Fatalf("score = %d, want 3", res.Score)
	}
	if len(res.Answers) != 1 {
		t.Fatalf("answers = %d rows, want 1 (unanswered questions produce no row)", len(res.Answers))
	}
	if res.Percentage != 30 {
		t.Fatalf("percentage = %d, want 30", res.Percentage)
	}
}

func TestGradeSubmission_UnknownQuestionIDsDropped(t *testing.T) {
	q := mcQuestion(2, "A", "A", "B")
	res := GradeSubmission(
		[]examModel.QuestionModel{q},
		map[uuid.UUID]string{
			q.QuestionID: "A",
			uuid.New():   "B",
			uuid.New():   "whatever",
		},
	)
	if len(res.Answers) != 1 {
		t.Fatalf("answers = %d rows, want 1", len(res.Answers))
	}
	if res.Score != 2 || res.MaxScore != 2 {
		t.Fatalf("score = %d/%d, want 2/2", res.Score, res.MaxScore)
	}
}

func TestGradeSubmission_PercentageRounds(t *testing.T) {
	q1 := mcQuestion(1, "A", "A", "B")
	q2 := mcQuestion(1, "A", "A", "B")
	q3 := mcQuestion(1, "A", "A", "B")

	one := GradeSubmission(
		[]examModel.QuestionModel{q1, q2, q3},
		map[uuid.UUID]string{q1.QuestionID: "A"},
	)
	if one.Percentage != 33 { // 33.33 rounds down
		t.Fatalf("1/3 percentage = %d, want 33", one.Percentage)
	}

	two := GradeSubmission(
		[]examModel.QuestionModel{q1, q2, q3},
		map[uuid.UUID]string{q1.QuestionID: "A", q2.QuestionID: "A"},
	)
	if two.Percentage != 67 { // 66.67 rounds up
		t.Fatalf("2/3 percentage = %d, want 67", two.Percentage)
	}
}

func TestGradeSubmission_NoAnswers(t *testing.T) {
	q1 := mcQuestion(3, "A", "A", "B")
	q2 := mcQuestion(7, "B", "A", "B")

	res := GradeSubmission([]examModel.QuestionModel{q1, q2}, nil)
	if res.Score != 0 || res.MaxScore != 10 || res.Percentage != 0 {
		t.Fatalf("empty submission graded %d/%d %d%%, want 0/10 0%%",
			res.Score, res.MaxScore, res.Percentage)
	}
	if len(res.Answers) != 0 {
		t.Fatalf("answers = %d rows, want 0", len(res.Answers))
	}
}

func TestGradeSubmission_EmptyBank(t *testing.T) {
	res := GradeSubmission(nil, map[uuid.UUID]string{uuid.New(): "A"})
	if res.Score != 0 || res.MaxScore != 0 || res.Percentage != 0 {
		t.Fatalf("empty bank must grade to 0/0 0%%, got %d/%d %d%%",
			res.Score, res.MaxScore, res.Percentage)
	}
}
