package entity

import "time"

type LoanStatus string

const (
	LoanPending  LoanStatus = "pending"
	LoanApproved LoanStatus = "approved"
	LoanRejected LoanStatus = "rejected"
)

// LoanApplication is a school-fee loan request. UserID and SchoolID are plain
// references and are not checked against their collections.
type LoanApplication struct {
	ID               string     `json:"id" bson:"id"`
	UserID           string     `json:"user_id" bson:"user_id"`
	SchoolID         string     `json:"school_id" bson:"school_id"`
	StudentName      string     `json:"student_name" bson:"student_name"`
	StudentAge       int        `json:"student_age" bson:"student_age"`
	ClassApplyingFor string     `json:"class_applying_for" bson:"class_applying_for"`
	LoanAmount       int64      `json:"loan_amount" bson:"loan_amount"`
	FamilyIncome     int64      `json:"family_income" bson:"family_income"`
	Documents        []string   `json:"documents" bson:"documents"`
	Status           LoanStatus `json:"status" bson:"status"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
}

type LoanInput struct {
	UserID           string   `json:"user_id" validate:"required"`
	SchoolID         string   `json:"school_id" validate:"required"`
	StudentName      string   `json:"student_name" validate:"required"`
	StudentAge       *int     `json:"student_age" validate:"required,gte=0"`
	ClassApplyingFor string   `json:"class_applying_for" validate:"required"`
	LoanAmount       *int64   `json:"loan_amount" validate:"required,gte=0"`
	FamilyIncome     *int64   `json:"family_income" validate:"required,gte=0"`
	Documents        []string `json:"documents"`
}

// NewLoanApplication validates in and builds a pending application.
func NewLoanApplication(in LoanInput) (*LoanApplication, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	documents := in.Documents
	if documents == nil {
		documents = []string{}
	}

	return &LoanApplication{
		ID:               newID(),
		UserID:           in.UserID,
		SchoolID:         in.SchoolID,
		StudentName:      in.StudentName,
		StudentAge:       *in.StudentAge,
		ClassApplyingFor: in.ClassApplyingFor,
		LoanAmount:       *in.LoanAmount,
		FamilyIncome:     *in.FamilyIncome,
		Documents:        documents,
		Status:           LoanPending,
		CreatedAt:        now(),
	}, nil
}
