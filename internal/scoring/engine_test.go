package scoring

import (
	"math"
	"testing"

	"credit-scoring-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		income        float64
		age           int
		loans         int
		wantScore     int
		wantRisk      models.RiskLevel
		wantExplained string
	}{
		{
			name: "Alice", income: 120000, age: 40, loans: 0,
			wantScore: 800, wantRisk: models.RiskLow,
			wantExplained: "Score based on: Income ($120,000), Age (40), Loans (0)",
		},
		{
			name: "Bob", income: 40000, age: 22, loans: 3,
			wantScore: 560, wantRisk: models.RiskHigh,
			wantExplained: "Score based on: Income ($40,000), Age (22), Loans (3)",
		},
		{
			name: "Carl", income: 60000, age: 30, loans: 6,
			wantScore: 575, wantRisk: models.RiskHigh,
			wantExplained: "Score based on: Income ($60,000), Age (30), Loans (6)",
		},
		{
			name: "medium tier", income: 50000, age: 25, loans: 4,
			wantScore: 605, wantRisk: models.RiskMedium,
			wantExplained: "Score based on: Income ($50,000), Age (25), Loans (4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.income, tt.age, tt.loans)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantRisk, got.RiskLevel)
			assert.Equal(t, tt.wantExplained, got.Explanation)
		})
	}
}

func TestIncomeScore_Bands(t *testing.T) {
	assert.Equal(t, 50, IncomeScore(0.01))
	assert.Equal(t, 50, IncomeScore(29999.99))
	assert.Equal(t, 100, IncomeScore(30000))
	assert.Equal(t, 100, IncomeScore(49999.99))
	assert.Equal(t, 150, IncomeScore(50000))
	assert.Equal(t, 150, IncomeScore(99999.99))
	assert.Equal(t, 200, IncomeScore(100000))
	assert.Equal(t, 200, IncomeScore(5e9))
}

func TestAgeScore_Bands(t *testing.T) {
	assert.Equal(t, 50, AgeScore(18))
	assert.Equal(t, 50, AgeScore(24))
	assert.Equal(t, 75, AgeScore(25))
	assert.Equal(t, 75, AgeScore(34))
	assert.Equal(t, 100, AgeScore(35))
	assert.Equal(t, 100, AgeScore(100))
}

func TestSubScores_Monotonic(t *testing.T) {
	prev := IncomeScore(1)
	for income := 1.0; income <= 200000; income += 250 {
		cur := IncomeScore(income)
		assert.GreaterOrEqual(t, cur, prev, "income %v", income)
		prev = cur
	}

	prev = AgeScore(18)
	for age := 18; age <= 100; age++ {
		cur := AgeScore(age)
		assert.GreaterOrEqual(t, cur, prev, "age %d", age)
		prev = cur
	}
}

func TestLoanPenalty_MonotonicAndCapped(t *testing.T) {
	assert.Equal(t, 0, LoanPenalty(0))
	assert.Equal(t, 90, LoanPenalty(3))
	assert.Equal(t, 150, LoanPenalty(5))
	assert.Equal(t, 150, LoanPenalty(10))
	assert.Equal(t, LoanPenalty(5), LoanPenalty(10))

	prev := LoanPenalty(0)
	for loans := 1; loans <= 50; loans++ {
		cur := LoanPenalty(loans)
		assert.GreaterOrEqual(t, cur, prev)
		assert.LessOrEqual(t, cur, 150)
		prev = cur
	}
}

func TestLoanPenalty_SaturatesForHugeCounts(t *testing.T) {
	for _, loans := range []int{1000, math.MaxInt32, math.MaxInt} {
		assert.Equal(t, 150, LoanPenalty(loans), "loans %d", loans)
	}
	assert.Equal(t, 0, LoanPenalty(-1))
}

func TestCalculate_HugeInputsStayInRange(t *testing.T) {
	got := Calculate(1e300, 40, math.MaxInt32)
	assert.Equal(t, 500+200+100-150, got.Score)
	assert.Equal(t, models.RiskLow, got.RiskLevel)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 300, Clamp(-10))
	assert.Equal(t, 300, Clamp(300))
	assert.Equal(t, 575, Clamp(575))
	assert.Equal(t, 850, Clamp(850))
	assert.Equal(t, 850, Clamp(900))
}

func TestRiskLevelFor_TotalAndDisjoint(t *testing.T) {
	for score := MinScore; score <= MaxScore; score++ {
		got := RiskLevelFor(score)
		switch {
		case score >= 700:
			assert.Equal(t, models.RiskLow, got, "score %d", score)
		case score >= 600:
			assert.Equal(t, models.RiskMedium, got, "score %d", score)
		default:
			assert.Equal(t, models.RiskHigh, got, "score %d", score)
		}
	}
}

func TestCalculate_ScoreAlwaysInRange(t *testing.T) {
	incomes := []float64{0.01, 29999, 30000, 50000, 100000, 1e7}
	for _, income := range incomes {
		for age := 18; age <= 100; age += 7 {
			for loans := 0; loans <= 12; loans++ {
				got := Calculate(income, age, loans)
				assert.GreaterOrEqual(t, got.Score, MinScore)
				assert.LessOrEqual(t, got.Score, MaxScore)
				assert.Equal(t, RiskLevelFor(got.Score), got.RiskLevel)
			}
		}
	}
}

func TestExplain_Formatting(t *testing.T) {
	assert.Equal(t, "Score based on: Income ($100,000,000,000,000,000,000), Age (40), Loans (0)", Explain(1e20, 40, 0))
	assert.Equal(t, "Score based on: Income ($1,234,568), Age (18), Loans (0)", Explain(1234567.89, 18, 0))
	assert.Equal(t, "Score based on: Income ($2), Age (30), Loans (1)", Explain(2.5, 30, 1))
	assert.Equal(t, "Score based on: Income ($999), Age (99), Loans (12)", Explain(999.4, 99, 12))
}
