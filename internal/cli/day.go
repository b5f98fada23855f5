package cli

import (
	"github.com/julianstephens/tracker/internal/constants"
	"github.com/julianstephens/tracker/internal/engine"
)

type MarkCmd struct {
	ID   string `arg:"" help:"Tracker id."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MarkCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}
	t, err := ctx.Store.GetTracker(c.ID)
	if err != nil {
		return err
	}

	effect, err := ctx.Engine.ToggleCompletion(c.ID, date)
	if err != nil {
		return err
	}

	day := date.Format(constants.DateFormat)
	switch effect {
	case engine.Inserted:
		ctx.printf("%s Marked %s %s for %s (%s)\n", doneStyle.Render("✓"), t.Emoji, t.Name, day, FormatDays(ctx.Engine.CompletionCount(c.ID)))
	case engine.Removed:
		ctx.printf("Unmarked %s %s for %s (%s)\n", t.Emoji, t.Name, day, FormatDays(ctx.Engine.CompletionCount(c.ID)))
	default:
		ctx.println(warnStyle.Render("cannot complete a future date"))
	}
	return nil
}

type DayCmd struct {
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Search string `help:"Only show trackers whose name contains this text." default:""`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ctx.ParseDate(c.Date)
	if err != nil {
		return err
	}

	view := ctx.Engine.Day(date, c.Search)
	ctx.println(headerStyle.Render("Trackers for " + date.Format(constants.DateFormat)))
	if len(view) == 0 {
		ctx.println("Nothing due.")
		return nil
	}

	done, total := 0, 0
	for _, category := range view {
		ctx.println()
		ctx.println(headerStyle.Render(category.Title))
		for _, td := range category.Trackers {
			total++
			if td.Completed {
				done++
			}
			ctx.printf("%s %s %s (%s)\n", checkbox(td.Completed), td.Tracker.Emoji, trackerName(td.Tracker), FormatDays(td.Count))
		}
	}
	ctx.printf("\nCompleted: %d/%d\n", done, total)
	return nil
}
