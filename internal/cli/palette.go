package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tracker/internal/constants"
)

type PaletteCmd struct{}

func (c *PaletteCmd) Run(ctx *Context) error {
	ctx.println(headerStyle.Render("Emoji"))
	ctx.println("  " + strings.Join(constants.Emojis, " "))
	ctx.println()
	ctx.println(headerStyle.Render("Colors"))
	for _, color := range constants.Colors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
		ctx.printf("  %s %s\n", swatch, color)
	}
	ctx.println()
	ctx.println(mutedStyle.Render("The first emoji and color are used when none is given."))
	return nil
}
