package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fintrack/internal/apperr"
	"fintrack/internal/repository"
)

// TextGenerator is the external text-generation collaborator. It is the
// only network dependency of the insight endpoints, kept behind an
// interface so tests can substitute a canned generator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InsightService builds prompts from ledger aggregates and forwards
// them to the generator. Only category labels and amounts leave the
// process; no other personal data is included in prompts.
type InsightService struct {
	dashboards *repository.DashboardRepository
	categories *repository.CategoryRepository
	generator  TextGenerator
}

func NewInsightService(dashboards *repository.DashboardRepository, categories *repository.CategoryRepository, generator TextGenerator) *InsightService {
	return &InsightService{dashboards: dashboards, categories: categories, generator: generator}
}

const forecastMonths = 6

type categorySpending struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// expenseDataset renders the user's expense-by-category rows as the
// compact JSON embedded in prompts.
func (s *InsightService) expenseDataset(userID uint, rng *repository.DateRange) ([]categorySpending, error) {
	rows, err := s.dashboards.ExpenseByCategory(userID, rng)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CategoryID)
	}
	names, err := s.categories.NamesByIDs(ids)
	if err != nil {
		return nil, err
	}
	data := make([]categorySpending, 0, len(rows))
	for _, row := range rows {
		name, ok := names[row.CategoryID]
		if !ok {
			name = unknownCategory
		}
		data = append(data, categorySpending{Category: name, Total: row.Total.String()})
	}
	return data, nil
}

func (s *InsightService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "failed to generate insights", err)
	}
	return text, nil
}

func mustJSON(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// SpendingSummary asks the generator for a few short insights over the
// user's expense breakdown. With no expense rows it short-circuits to a
// canned JSON body without calling upstream.
func (s *InsightService) SpendingSummary(ctx context.Context, userID uint, rng *repository.DateRange) (string, error) {
	data, err := s.expenseDataset(userID, rng)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return mustJSON(map[string]interface{}{
			"summary":  "No expenses recorded for this period.",
			"insights": []string{},
		}), nil
	}

	prompt := fmt.Sprintf(`You are a personal finance assistant.
Summarize this user's spending in 3-5 short insights for dashboard display.

Return your answer as valid JSON with keys:
{
  "summary": string,
  "insights": string[]
}

Data:
%s`, mustJSON(data))

	return s.generate(ctx, prompt)
}

// SavingRecommendations asks the generator for personalized saving tips
// over the same expense breakdown.
func (s *InsightService) SavingRecommendations(ctx context.Context, userID uint, rng *repository.DateRange) (string, error) {
	data, err := s.expenseDataset(userID, rng)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return mustJSON(map[string]interface{}{
			"summary":  "No expenses recorded for this period.",
			"insights": []string{},
		}), nil
	}

	prompt := fmt.Sprintf(`You are a financial advisor.
Given the user's spending data, suggest 3 personalized saving tips.

Return your answer as valid JSON with keys:
{
  "tips": string[]
}

Data:
%s`, mustJSON(data))

	return s.generate(ctx, prompt)
}

// Forecast predicts next month's expense trend from the recent monthly
// expense history.
func (s *InsightService) Forecast(ctx context.Context, userID uint) (string, error) {
	trend, err := s.dashboards.MonthlyExpenseTrend(userID, forecastMonths)
	if err != nil {
		return "", err
	}
	if len(trend) == 0 {
		return mustJSON(map[string]interface{}{
			"forecastText":   "No expense data available to generate a forecast.",
			"expectedChange": "N/A",
		}), nil
	}

	prompt := fmt.Sprintf(`You are an AI financial forecaster.
Predict next month's expense trend based on this %d-month history.

Return your answer as valid JSON with keys:
{
  "forecastText": string,
  "expectedChange": string
}

Data:
%s`, forecastMonths, mustJSON(trend))

	return s.generate(ctx, prompt)
}
