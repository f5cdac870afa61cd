package tui

// renderStrip prints the hand as plain "[a,b]" pairs, the form users copy
// into `domino --tiles`.
func renderStrip(m *Model, width int) string {
	title := panelTitleStyle.Render("Domino Manipulate")
	if len(m.hand) == 0 {
		return panelStyle.Width(maxInt(width-2, 1)).Render(title + "  " + dimStyle.Render("(empty)"))
	}
	body := wrapTiles("", m.hand, maxInt(width-6, 8))
	return panelStyle.Width(maxInt(width-2, 1)).Render(title + "\n" + detailValueStyle.Render(body))
}
