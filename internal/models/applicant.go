// internal/models/applicant.go
package models

// Applicant is one persisted scoring request. ID is assigned by the store.
type Applicant struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Income        float64 `json:"income"`
	Age           int     `json:"age"`
	ExistingLoans int     `json:"existing_loans"`
}

// NewApplicant carries the attributes of an applicant before insertion.
type NewApplicant struct {
	Name          string
	Income        float64
	Age           int
	ExistingLoans int
}

// WithID returns the stored form of a.
func (a NewApplicant) WithID(id int64) Applicant {
	return Applicant{
		ID:            id,
		Name:          a.Name,
		Income:        a.Income,
		Age:           a.Age,
		ExistingLoans: a.ExistingLoans,
	}
}
