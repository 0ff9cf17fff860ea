package controllers

import (
	"context"
	"scoreboard/internal/console"
	"scoreboard/internal/models"
	"scoreboard/internal/providers"
	"scoreboard/internal/services"
	"time"
)

type LegacyController struct {
	logger  providers.Logger
	service services.LegacyScoreServiceInterface
	metrics providers.MetricsProviderInterface
	prompt  *console.Prompter
	now     func() time.Time
}

func NewLegacyController(logger providers.Logger, service services.LegacyScoreServiceInterface, metrics providers.MetricsProviderInterface, prompt *console.Prompter) *LegacyController {
	return &LegacyController{
		logger:  logger,
		service: service,
		metrics: metrics,
		prompt:  prompt,
		now:     time.Now,
	}
}

func (lc *LegacyController) ViewScores(ctx context.Context) {
	month, err := askMonth(lc.prompt, "Enter month (YYYY-MM)", models.MonthOf(lc.now()))
	if err != nil {
		lc.prompt.Println(err)
		return
	}

	scores, err := lc.service.FetchScores(ctx, month)
	if err != nil {
		reportError(lc.logger, lc.metrics, "fetch", "fetching scores", err)
		return
	}
	WriteMonthSummary(lc.prompt.Out(), lc.service.Roster(), month, scores)
}

func (lc *LegacyController) UpdateScore(ctx context.Context) {
	roster := lc.service.Roster()
	req, err := lc.readUpdate(roster)
	if err != nil {
		lc.prompt.Println(err)
		return
	}
	if err = req.Validate(roster); err != nil {
		lc.prompt.Printf("Invalid update: %s\n", err)
		return
	}

	if err = lc.service.UpdateScore(ctx, req); err != nil {
		reportError(lc.logger, lc.metrics, "update", "updating score", err)
		return
	}
	lc.prompt.Printf("Successfully updated score for %s on %s\n", req.PlayerName, req.Date)
}

func (lc *LegacyController) readUpdate(roster models.Roster) (*models.UpdateScoreRequest, error) {
	req := &models.UpdateScoreRequest{}
	var err error

	if req.Date, err = lc.prompt.Ask("Enter date (YYYY-MM-DD): "); err != nil {
		return nil, err
	}
	name, err := lc.prompt.Ask("Enter player name (" + roster.String() + "): ")
	if err != nil {
		return nil, err
	}
	req.PlayerName = name
	if canonical, ok := roster.Canonical(name); ok {
		req.PlayerName = canonical
	}

	if req.Scores.Wordle, err = lc.prompt.AskOptionalInt("Enter Wordle score (or press Enter to skip): "); err != nil {
		return nil, err
	}
	if req.Scores.Connections, err = lc.prompt.AskOptionalInt("Enter Connections score (or press Enter to skip): "); err != nil {
		return nil, err
	}
	if req.Scores.Strands, err = lc.prompt.AskOptionalInt("Enter Strands score (or press Enter to skip): "); err != nil {
		return nil, err
	}
	if req.Scores.BonusWordle, err = lc.prompt.AskOptionalBool("Bonus Wordle? (y/n, Enter to skip): "); err != nil {
		return nil, err
	}
	if req.Scores.BonusConnections, err = lc.prompt.AskOptionalBool("Bonus Connections? (y/n, Enter to skip): "); err != nil {
		return nil, err
	}
	if req.Scores.BonusStrands, err = lc.prompt.AskOptionalBool("Bonus Strands? (y/n, Enter to skip): "); err != nil {
		return nil, err
	}
	return req, nil
}

func (lc *LegacyController) ArchiveMonth(ctx context.Context) {
	month, err := askMonth(lc.prompt, "Enter month to archive (YYYY-MM)", models.MonthOf(lc.now()).Previous())
	if err != nil {
		lc.prompt.Println(err)
		return
	}
	ok, err := lc.prompt.Confirm("Are you sure you want to archive " + month.Label() + " scores? (y/N): ")
	if err != nil || !ok {
		return
	}

	if err = lc.service.ArchiveMonth(ctx, month); err != nil {
		reportError(lc.logger, lc.metrics, "archive", "archiving scores", err)
		return
	}
	lc.prompt.Printf("Successfully archived %s scores\n", month.Label())
}
