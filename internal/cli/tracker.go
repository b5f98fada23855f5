package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/tracker/internal/constants"
	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

type TrackerCmd struct {
	Add    TrackerAddCmd    `cmd:"" help:"Add a habit or irregular event."`
	List   TrackerListCmd   `cmd:"" help:"List all trackers."`
	Delete TrackerDeleteCmd `cmd:"" help:"Delete a tracker and its completion records."`
}

type TrackerAddCmd struct {
	Name     string `arg:"" help:"Tracker name."`
	Category string `help:"Category title." required:""`
	Days     string `help:"Comma-separated weekdays (mon,wed), 'daily', or empty for an irregular event." default:""`
	Emoji    string `help:"Emoji from the palette (see 'tracker palette')." default:""`
	Color    string `help:"Color from the palette (see 'tracker palette')." default:""`
}

// Validate checks the name limit and palette choices; kong calls it before Run
func (c *TrackerAddCmd) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return apperrors.InvalidInput("tracker name is required")
	}
	if n := utf8.RuneCountInString(name); n > constants.MaxTrackerNameLength {
		return apperrors.InvalidInput("tracker name is %d characters, the limit is %d", n, constants.MaxTrackerNameLength)
	}
	if c.Emoji != "" && !constants.IsPaletteEmoji(c.Emoji) {
		return apperrors.InvalidInput("emoji %q is not in the palette", c.Emoji)
	}
	if c.Color != "" && !constants.IsPaletteColor(strings.ToLower(c.Color)) {
		return apperrors.InvalidInput("color %q is not in the palette", c.Color)
	}
	return nil
}

func (c *TrackerAddCmd) Run(ctx *Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	schedule, err := ParseWeekdays(c.Days)
	if err != nil {
		return apperrors.InvalidInput("%v", err)
	}

	emoji := c.Emoji
	if emoji == "" {
		emoji = constants.Emojis[0]
	}
	color := strings.ToLower(c.Color)
	if color == "" {
		color = constants.Colors[0]
	}

	t, err := ctx.Engine.AddTracker(models.Tracker{
		Name:     c.Name,
		Emoji:    emoji,
		Color:    color,
		Schedule: schedule,
	}, c.Category)
	if err != nil {
		return err
	}

	ctx.printf("Added %s %s to %q (%s)\n", t.Emoji, t.Name, models.CanonicalTitle(c.Category), t.Schedule)
	ctx.println(mutedStyle.Render("id: " + t.ID))
	return nil
}

type TrackerListCmd struct{}

func (c *TrackerListCmd) Run(ctx *Context) error {
	trackers := ctx.Engine.Trackers()
	if len(trackers) == 0 {
		ctx.println("No trackers found.")
		return nil
	}

	categoryOf := make(map[string]string)
	for _, category := range ctx.Engine.Categories() {
		for _, t := range category.Trackers {
			if _, ok := categoryOf[t.ID]; !ok {
				categoryOf[t.ID] = category.Title
			}
		}
	}

	for _, t := range trackers {
		title, ok := categoryOf[t.ID]
		if !ok {
			title = "uncategorized"
		}
		ctx.printf("%s  %s %s  %s  %s\n",
			mutedStyle.Render(t.ID),
			t.Emoji,
			trackerName(t),
			mutedStyle.Render(fmt.Sprintf("[%s]", title)),
			FormatDays(ctx.Engine.CompletionCount(t.ID)),
		)
	}
	return nil
}

type TrackerDeleteCmd struct {
	ID string `arg:"" help:"Tracker id (see 'tracker tracker list')."`
}

func (c *TrackerDeleteCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	if err := ctx.Engine.DeleteTracker(c.ID); err != nil {
		return err
	}
	ctx.printf("Deleted tracker %s and its records\n", c.ID)
	return nil
}
