// Package components renders slider widgets for terminal hosts with lipgloss.
//
// Components embed BaseComponent and accept theme-aware StyleFunc modifiers.
// Themes are immutable values passed through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.ASCIITheme())
//	out := components.NewSlider(engine.Layout(), false, 40).ViewWithContext(ctx)
//
// Slider draws a track from a slider.Layout, mapping layout percentages onto
// terminal cells. Readout renders a label with the formatted value or range.
package components
