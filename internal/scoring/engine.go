// Package scoring computes the deterministic credit score for an applicant.
package scoring

import (
	"fmt"
	"math"

	"credit-scoring-api/internal/models"

	"github.com/dustin/go-humanize"
)

const (
	BaseScore = 500
	MinScore  = 300
	MaxScore  = 850

	loanPenaltyPerLoan = 30
	maxLoanPenalty     = 150
)

// band awards points to any value at or above min. Bands are ordered
// highest first and the first match wins.
type band struct {
	min    float64
	points int
}

var incomeBands = []band{
	{min: 100000, points: 200},
	{min: 50000, points: 150},
	{min: 30000, points: 100},
}

const incomeFloorPoints = 50

var ageBands = []band{
	{min: 35, points: 100},
	{min: 25, points: 75},
}

const ageFloorPoints = 50

type riskTier struct {
	minScore int
	level    models.RiskLevel
}

var riskTiers = []riskTier{
	{minScore: 700, level: models.RiskLow},
	{minScore: 600, level: models.RiskMedium},
}

func lookup(bands []band, value float64, floor int) int {
	for _, b := range bands {
		if value >= b.min {
			return b.points
		}
	}
	return floor
}

// IncomeScore is the income sub-score.
func IncomeScore(income float64) int {
	return lookup(incomeBands, income, incomeFloorPoints)
}

// AgeScore is the age sub-score.
func AgeScore(age int) int {
	return lookup(ageBands, float64(age), ageFloorPoints)
}

// LoanPenalty is 30 points per existing loan, capped at 150.
func LoanPenalty(existingLoans int) int {
	if existingLoans >= maxLoanPenalty/loanPenaltyPerLoan {
		return maxLoanPenalty
	}
	return max(existingLoans, 0) * loanPenaltyPerLoan
}

// Clamp bounds raw to [MinScore, MaxScore].
func Clamp(raw int) int {
	return max(MinScore, min(MaxScore, raw))
}

// RiskLevelFor classifies a clamped score.
func RiskLevelFor(score int) models.RiskLevel {
	for _, tier := range riskTiers {
		if score >= tier.minScore {
			return tier.level
		}
	}
	return models.RiskHigh
}

// Explain renders the inputs the score was derived from.
func Explain(income float64, age, existingLoans int) string {
	return fmt.Sprintf("Score based on: Income ($%s), Age (%d), Loans (%d)",
		humanize.Commaf(math.RoundToEven(income)), age, existingLoans)
}

// Result is the outcome of one scoring call.
type Result struct {
	Score       int
	Explanation string
	RiskLevel   models.RiskLevel
}

// Calculate scores an applicant. Inputs are assumed to be validated.
func Calculate(income float64, age, existingLoans int) Result {
	raw := BaseScore + IncomeScore(income) + AgeScore(age) - LoanPenalty(existingLoans)
	score := Clamp(raw)

	return Result{
		Score:       score,
		Explanation: Explain(income, age, existingLoans),
		RiskLevel:   RiskLevelFor(score),
	}
}
