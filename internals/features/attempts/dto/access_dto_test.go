// file: internals/features/attempts/dto/access_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func TestSubmitExamRequest_EmptyAnswersAllowed(t *testing.T) {
	v := validator.New()

	req := SubmitExamRequest{
		Code:        "AB12CD34",
		StudentName: "Quiet Student",
	}
	if err := v.Struct(&req); err != nil {
		t.Fatalf("submission with no answers must validate, got %v", err)
	}

	req.Answers = []SubmitAnswer{}
	if err := v.Struct(&req); err != nil {
		t.Fatalf("submission with empty answer list must validate, got %v", err)
	}
}

func TestSubmitExamRequest_RequiredFields(t *testing.T) {
	v := validator.New()

	if err := v.Struct(&SubmitExamRequest{StudentName: "x"}); err == nil {
		t.Fatal("missing code must fail validation")
	}
	if err := v.Struct(&SubmitExamRequest{Code: "AB12CD34"}); err == nil {
		t.Fatal("missing student_name must fail validation")
	}
	if err := v.Struct(&SubmitExamRequest{Code: "SHORT", StudentName: "x"}); err == nil {
		t.Fatal("code of wrong length must fail validation")
	}

	bad := SubmitExamRequest{
		Code:        "AB12CD34",
		StudentName: "x",
		Answers:     []SubmitAnswer{{QuestionID: uuid.Nil, Answer: "A"}},
	}
	if err := v.Struct(&bad); err == nil {
		t.Fatal("zero question_id must fail validation")
	}
}
