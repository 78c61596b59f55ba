package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrorBanner is a red strip above the panel for problems the user should
// fix outside the window, such as a broken settings file.
type ErrorBanner struct {
	container *fyne.Container
	text      *widget.Label
}

// NewErrorBanner creates a hidden banner.
func NewErrorBanner() *ErrorBanner {
	text := widget.NewLabel("")
	text.Wrapping = fyne.TextWrapWord
	text.Alignment = fyne.TextAlignCenter

	rect := canvas.NewRectangle(color.NRGBA{R: 255, G: 200, B: 200, A: 255})
	rect.SetMinSize(fyne.NewSize(0, 40))

	eb := &ErrorBanner{
		container: container.NewStack(rect, container.NewPadded(text)),
		text:      text,
	}
	eb.container.Hide()
	return eb
}

// GetContainer returns the container for embedding in UI
func (eb *ErrorBanner) GetContainer() *fyne.Container {
	return eb.container
}

// ShowMessage sets the message and shows the banner.
func (eb *ErrorBanner) ShowMessage(message string) {
	eb.text.SetText("❌ " + message)
	eb.container.Show()
	eb.container.Refresh()
}

// Hide hides the error banner
func (eb *ErrorBanner) Hide() {
	eb.container.Hide()
}

// IsVisible returns whether the banner is visible
func (eb *ErrorBanner) IsVisible() bool {
	return eb.container.Visible()
}

// Message returns the text currently shown, without the marker.
func (eb *ErrorBanner) Message() string {
	if !eb.IsVisible() {
		return ""
	}
	return eb.text.Text[len("❌ "):]
}
