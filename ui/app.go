package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"souffleur/internal/constants"
	"souffleur/internal/debuglog"
	"souffleur/internal/dialogs"
	"souffleur/internal/netinfo"
	"souffleur/internal/settings"
	"souffleur/ui/components"
)

const (
	logPrefix    = "ui"
	infoWidth    = 220
	probeTimeout = 5 * time.Second
)

// App is the connection panel: where the machine can be reached and on
// which port.
type App struct {
	window   fyne.Window
	settings settings.Settings

	device  *components.ReadOnlyEntry
	address *components.ReadOnlyEntry
	public  *components.ReadOnlyEntry
	port    *components.IntegerEntry
	check   *widget.Button
	banner  *ErrorBanner

	// PortStatus mirrors the committed port for labels and other listeners.
	PortStatus binding.String

	content fyne.CanvasObject
}

// NewApp builds the panel from s. It fails when the port bounds are invalid.
func NewApp(window fyne.Window, s settings.Settings) (*App, error) {
	port, err := components.NewIntegerField(s.PortMin, s.PortMax, s.PortStrict)
	if err != nil {
		return nil, fmt.Errorf("NewApp: port field: %w", err)
	}
	a := &App{
		window:     window,
		settings:   s,
		device:     components.NewReadOnlyField(),
		address:    components.NewReadOnlyField(),
		public:     components.NewReadOnlyField(),
		port:       port,
		banner:     NewErrorBanner(),
		PortStatus: binding.NewString(),
	}
	a.port.OnCommitted = a.onPortCommitted
	a.updatePortStatus()
	if err := a.port.SetValue(s.PortDefault); err != nil {
		debuglog.Log(logPrefix, debuglog.LevelWarn, debuglog.UseGlobal, "NewApp: default port: %v", err)
	}

	a.check = widget.NewButton("Check", a.CheckPublicAddress)

	a.content = container.NewVBox(
		a.banner.GetContainer(),
		components.NewFlowPanel(s.FlowHGap, widget.NewLabel("Device"), sized(a.device)),
		components.NewFlowPanel(s.FlowHGap, widget.NewLabel("Address"), sized(a.address)),
		components.NewFlowPanel(s.FlowHGap, widget.NewLabel("Public address"), sized(a.public), a.check),
		components.NewFlowPanel(s.FlowHGap, widget.NewLabel("Port"), a.port, widget.NewLabelWithData(a.PortStatus)),
	)
	return a, nil
}

// GetContent returns the panel content for the window
func (a *App) GetContent() fyne.CanvasObject {
	return a.content
}

// ShowSettingsError reports a settings problem above the panel.
func (a *App) ShowSettingsError(err error) {
	a.banner.ShowMessage("Settings ignored, using defaults: " + err.Error())
}

// Port returns the committed port.
func (a *App) Port() (int, bool) {
	return a.port.Value()
}

// RefreshLocal fills the device and address fields in the background.
func (a *App) RefreshLocal() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		local, err := netinfo.DiscoverLocal(ctx, constants.RouteProbeAddr)
		if err != nil {
			debuglog.Log(logPrefix, debuglog.LevelWarn, debuglog.UseGlobal, "RefreshLocal: %v", err)
		}
		fyne.Do(func() {
			a.device.SetText(orUnavailable(local.Device))
			a.address.SetText(orUnavailable(local.Address))
		})
	}()
}

// CheckPublicAddress asks the configured STUN server for the public address.
func (a *App) CheckPublicAddress() {
	a.check.Disable()
	a.public.SetText("checking…")
	server := a.settings.STUNServer
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		ip, err := netinfo.PublicAddress(ctx, server)
		if err != nil {
			debuglog.Log(logPrefix, debuglog.LevelWarn, debuglog.UseGlobal, "CheckPublicAddress: %s: %v", server, err)
		} else {
			debuglog.Log(logPrefix, debuglog.LevelInfo, debuglog.UseGlobal, "CheckPublicAddress: %s reports %s", server, ip)
		}
		fyne.Do(func() {
			a.check.Enable()
			a.public.SetText(orUnavailable(ip))
		})
		if err != nil {
			dialogs.ShowError(a.window, fmt.Errorf("public address check via %s failed: %w", server, err))
		}
	}()
}

func (a *App) onPortCommitted(v int) {
	debuglog.Log(logPrefix, debuglog.LevelVerbose, debuglog.UseGlobal, "port committed: %d", v)
	a.updatePortStatus()
}

func (a *App) updatePortStatus() {
	text := "Port: not set"
	if v, ok := a.port.Value(); ok {
		text = fmt.Sprintf("Port: %d", v)
	}
	if err := a.PortStatus.Set(text); err != nil {
		debuglog.Log(logPrefix, debuglog.LevelError, debuglog.UseGlobal, "updatePortStatus: %v", err)
	}
}

// sized gives a read-only field a usable width; entries alone shrink to a
// few characters.
func sized(e *components.ReadOnlyEntry) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(infoWidth, e.MinSize().Height), e)
}

func orUnavailable(s string) string {
	if s == "" {
		return "unavailable"
	}
	return s
}
