package controllers

import (
	"errors"
	"fmt"
	"io"
	"scoreboard/internal/console"
	"scoreboard/internal/models"
	"scoreboard/internal/providers"
	"scoreboard/internal/services"
	"strings"
)

// WriteMonthSummary prints every roster player's month in roster order.
func WriteMonthSummary(w io.Writer, roster models.Roster, month models.Month, scores models.PlayerScores) {
	if scores.Empty() {
		fmt.Fprintf(w, "No scores found for %s\n", month.Label())
		return
	}

	for i, key := range roster.Keys() {
		data := scores[key]
		if data == nil {
			data = models.NewPlayerData()
		}

		fmt.Fprintf(w, "\n%s's %s scores:\n", roster[i], month.Label())
		for _, date := range data.Dates() {
			day := data.DailyScores[date]
			fmt.Fprintf(w, "%s: %d points\n", date, day.Total)
			if active := day.BonusPoints.Active(); len(active) > 0 {
				fmt.Fprintf(w, "  Bonus points: %s\n", strings.Join(active, ", "))
			}
		}
		fmt.Fprintf(w, "Total score: %d\n", data.Total)
		fmt.Fprintf(w, "Total bonuses: Wordle: %d, Connections: %d, Strands: %d\n",
			data.TotalBonuses.Wordle, data.TotalBonuses.Connections, data.TotalBonuses.Strands)
	}
}

// reportError logs a failed operation and, for HTTP errors, the response
// body. The menu carries on afterwards.
func reportError(logger providers.Logger, metrics providers.MetricsProviderInterface, operation, doing string, err error) {
	metrics.IncOperationErrors(operation)
	logger.Errorf(providers.TypeApp, "Error %s: %s", doing, err)

	var respErr *services.ResponseError
	if errors.As(err, &respErr) && respErr.Body != "" {
		logger.Errorf(providers.TypeApp, "Response: %s", respErr.Body)
	}
}

// askMonth prompts for a YYYY-MM month, offering def.
func askMonth(p *console.Prompter, question string, def models.Month) (models.Month, error) {
	answer, err := p.AskDefault(question, def.String())
	if err != nil {
		return models.Month{}, err
	}
	return models.ParseMonth(answer)
}
