// file: internals/features/exams/model/question_model_test.go
package model

import "testing"

func strp(s string) *string { return &s }

func TestValidateShape(t *testing.T) {
	cases := []struct {
		name    string
		q       QuestionModel
		wantErr bool
	}{
		{
			"mc valid",
			QuestionModel{QuestionType: QuestionTypeMultipleChoice, QuestionPrompt: "q",
				QuestionOptions: []string{"A", "B"}, QuestionCorrectAnswer: strp("A"), QuestionPoints: 1},
			false,
		},
		{
			"mc one option",
			QuestionModel{QuestionType: QuestionTypeMultipleChoice, QuestionPrompt: "q",
				QuestionOptions: []string{"A"}, QuestionCorrectAnswer: strp("A"), QuestionPoints: 1},
			true,
		},
		{
			"mc blank option",
			QuestionModel{QuestionType: QuestionTypeMultipleChoice, QuestionPrompt: "q",
				QuestionOptions: []string{"A", "  "}, QuestionCorrectAnswer: strp("A"), QuestionPoints: 1},
			true,
		},
		{
			"mc correct not in options",
			QuestionModel{QuestionType: QuestionTypeMultipleChoice, QuestionPrompt: "q",
				QuestionOptions: []string{"A", "B"}, QuestionCorrectAnswer: strp("C"), QuestionPoints: 1},
			true,
		},
		{
			"tf valid",
			QuestionModel{QuestionType: QuestionTypeTrueFalse, QuestionPrompt: "q",
				QuestionCorrectAnswer: strp("true"), QuestionPoints: 2},
			false,
		},
		{
			"tf bad answer",
			QuestionModel{QuestionType: QuestionTypeTrueFalse, QuestionPrompt: "q",
				QuestionCorrectAnswer: strp("yes"), QuestionPoints: 2},
			true,
		},
		{
			"tf with options",
			QuestionModel{QuestionType: QuestionTypeTrueFalse, QuestionPrompt: "q",
				QuestionOptions: []string{"true", "false"}, QuestionCorrectAnswer: strp("true"), QuestionPoints: 1},
			true,
		},
		{
			"short valid",
			QuestionModel{QuestionType: QuestionTypeShortAnswer, QuestionPrompt: "q",
				QuestionCorrectAnswer: strp("Paris"), QuestionPoints: 1},
			false,
		},
		{
			"short missing answer",
			QuestionModel{QuestionType: QuestionTypeShortAnswer, QuestionPrompt: "q", QuestionPoints: 1},
			true,
		},
		{
			"essay valid",
			QuestionModel{QuestionType: QuestionTypeEssay, QuestionPrompt: "q", QuestionPoints: 10},
			false,
		},
		{
			"essay with correct answer",
			QuestionModel{QuestionType: QuestionTypeEssay, QuestionPrompt: "q",
				QuestionCorrectAnswer: strp("anything"), QuestionPoints: 10},
			true,
		},
		{
			"zero points",
			QuestionModel{QuestionType: QuestionTypeEssay, QuestionPrompt: "q", QuestionPoints: 0},
			true,
		},
		{
			"blank prompt",
			QuestionModel{QuestionType: QuestionTypeEssay, QuestionPrompt: "   ", QuestionPoints: 1},
			true,
		},
		{
			"bogus type",
			QuestionModel{QuestionType: "matching", QuestionPrompt: "q", QuestionPoints: 1},
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.q.ValidateShape()
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateShape() error = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestQuestionTypeIsObjective(t *testing.T) {
	if !QuestionTypeMultipleChoice.IsObjective() ||
		!QuestionTypeTrueFalse.IsObjective() ||
		!QuestionTypeShortAnswer.IsObjective() {
		t.Fatal("objective types misclassified")
	}
	if QuestionTypeEssay.IsObjective() {
		t.Fatal("essay must not be objective")
	}
}
