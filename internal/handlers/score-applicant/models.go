// internal/handlers/score-applicant/models.go
package scoreapplicant

import "credit-scoring-api/internal/models"

// Input is the decoded POST /score request body.
type Input struct {
	Name          string  `json:"name"`
	Income        float64 `json:"income"`
	Age           int     `json:"age"`
	ExistingLoans int     `json:"existing_loans"`
}

// Output is the response body for a scored applicant.
type Output = models.ScoreResult

func (in *Input) toNewApplicant() models.NewApplicant {
	return models.NewApplicant{
		Name:          in.Name,
		Income:        in.Income,
		Age:           in.Age,
		ExistingLoans: in.ExistingLoans,
	}
}
