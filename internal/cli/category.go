package cli

import (
	"github.com/julianstephens/tracker/internal/models"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Add a category."`
	List   CategoryListCmd   `cmd:"" help:"List categories and their trackers."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category. Its trackers and records are kept."`
}

type CategoryAddCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	category, err := ctx.Engine.AddCategory(models.TrackerCategory{Title: c.Title})
	if err != nil {
		return err
	}
	ctx.printf("Category %q has %d tracker(s)\n", category.Title, len(category.Trackers))
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	categories := ctx.Engine.Categories()
	if len(categories) == 0 {
		ctx.println("No categories found.")
		return nil
	}

	for _, category := range categories {
		ctx.println(headerStyle.Render(category.Title))
		if len(category.Trackers) == 0 {
			ctx.println(mutedStyle.Render("  (empty)"))
			continue
		}
		for _, t := range category.Trackers {
			ctx.printf("  %s %s  %s\n", t.Emoji, trackerName(t), mutedStyle.Render(t.Schedule.String()))
		}
	}
	return nil
}

type CategoryDeleteCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	if _, ok := ctx.Engine.Category(c.Title); !ok {
		ctx.printf("No category named %q\n", c.Title)
		return nil
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Engine.DeleteCategory(c.Title); err != nil {
		return err
	}
	ctx.printf("Deleted category %q\n", models.CanonicalTitle(c.Title))
	return nil
}
