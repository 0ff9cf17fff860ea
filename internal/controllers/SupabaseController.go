package controllers

import (
	"context"
	"errors"
	"scoreboard/internal/console"
	"scoreboard/internal/models"
	"scoreboard/internal/providers"
	"scoreboard/internal/services"
	"strings"
	"time"
)

type SupabaseController struct {
	logger  providers.Logger
	service services.SupabaseScoreServiceInterface
	metrics providers.MetricsProviderInterface
	prompt  *console.Prompter
	now     func() time.Time
}

func NewSupabaseController(logger providers.Logger, service services.SupabaseScoreServiceInterface, metrics providers.MetricsProviderInterface, prompt *console.Prompter) *SupabaseController {
	return &SupabaseController{
		logger:  logger,
		service: service,
		metrics: metrics,
		prompt:  prompt,
		now:     time.Now,
	}
}

func (sc *SupabaseController) ViewScores(ctx context.Context) {
	month, err := askMonth(sc.prompt, "Enter month (YYYY-MM)", models.MonthOf(sc.now()))
	if err != nil {
		sc.prompt.Println(err)
		return
	}

	scores, err := sc.service.FetchScores(ctx, month)
	if err != nil {
		reportError(sc.logger, sc.metrics, "fetch", "fetching scores", err)
		return
	}
	WriteMonthSummary(sc.prompt.Out(), sc.service.Roster(), month, scores)
}

func (sc *SupabaseController) ViewArchive(ctx context.Context) {
	months, err := sc.service.ListArchivedMonths(ctx)
	if err != nil {
		reportError(sc.logger, sc.metrics, "list_archives", "listing archived months", err)
		return
	}
	if len(months) == 0 {
		sc.prompt.Println("No archived months yet")
		return
	}
	sc.prompt.Printf("Archived months: %s\n", strings.Join(months, ", "))

	def, err := models.ParseMonth(months[0])
	if err != nil {
		def = models.MonthOf(sc.now()).Previous()
	}
	month, err := askMonth(sc.prompt, "Enter archived month (YYYY-MM)", def)
	if err != nil {
		sc.prompt.Println(err)
		return
	}

	scores, err := sc.service.FetchArchivedMonth(ctx, month)
	if err != nil {
		reportError(sc.logger, sc.metrics, "fetch_archive", "fetching archived month", err)
		return
	}
	if scores == nil {
		sc.prompt.Printf("No archived scores found for %s\n", month.Label())
		return
	}
	WriteMonthSummary(sc.prompt.Out(), sc.service.Roster(), month, scores)
}

func (sc *SupabaseController) ArchiveMonth(ctx context.Context) {
	month, err := askMonth(sc.prompt, "Enter month to archive (YYYY-MM)", models.MonthOf(sc.now()).Previous())
	if err != nil {
		sc.prompt.Println(err)
		return
	}
	ok, err := sc.prompt.Confirm("Are you sure you want to archive " + month.Label() + " scores? (y/N): ")
	if err != nil || !ok {
		return
	}

	scores, err := sc.service.ArchiveMonth(ctx, month)
	if errors.Is(err, services.ErrNothingToArchive) {
		sc.prompt.Printf("Nothing to archive for %s\n", month.Label())
		return
	}
	if err != nil {
		reportError(sc.logger, sc.metrics, "archive", "archiving scores", err)
		return
	}
	sc.prompt.Printf("Successfully archived %s scores\n", month.Label())
	WriteMonthSummary(sc.prompt.Out(), sc.service.Roster(), month, scores)
}
