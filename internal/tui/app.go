package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"workoutmap/internal/analysis"
	"workoutmap/internal/tracker"
	"workoutmap/internal/workout"
)

// Screen identifiers
type Screen int

const (
	ScreenMap Screen = iota
	ScreenStats
	ScreenHelp
)

type focusArea int

const (
	focusMap focusArea = iota
	focusList
)

// Config holds UI timing settings
type Config struct {
	LocateTimeout time.Duration
	PanDuration   time.Duration
}

// App is the root Bubble Tea model. It owns the map, list and form
// projections and feeds every event to the tracker controller, so all
// controller calls happen on the Bubble Tea event loop.
type App struct {
	screen     Screen
	prevScreen Screen
	focus      focusArea

	ctrl    *tracker.Controller
	mapView *MapModel
	list    *ListModel
	form    *FormModel
	stats   StatsModel
	help    HelpModel

	cfg   Config
	alert string

	width  int
	height int
}

// locationMsg carries the geolocation result back to the event loop
type locationMsg struct {
	coords workout.Coordinates
	err    error
}

// NewApp builds the projections, hands them to a new controller and
// returns the root model. Map, List, Form and Alerter in opts are set here.
func NewApp(opts tracker.Options, cfg Config) *App {
	a := &App{
		screen:  ScreenMap,
		mapView: NewMapModel(cfg.PanDuration),
		list:    NewListModel(),
		form:    NewFormModel(),
		stats:   NewStatsModel(0, 0),
		help:    NewHelpModel(),
		cfg:     cfg,
	}

	opts.Map = a.mapView
	opts.List = a.list
	opts.Form = a.form
	opts.Alerter = a
	a.ctrl = tracker.New(opts)
	a.list.OnSelect(a.ctrl.SelectEntry)

	return a
}

// Controller returns the tracker controller
func (a *App) Controller() *tracker.Controller {
	return a.ctrl
}

// Alert shows a message until the next key press
func (a *App) Alert(msg string) {
	a.alert = msg
}

// Init starts the geolocation request
func (a *App) Init() tea.Cmd {
	return a.locate
}

func (a *App) locate() tea.Msg {
	ctx := context.Background()
	if a.cfg.LocateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.LocateTimeout)
		defer cancel()
	}
	coords, err := a.ctrl.Locate(ctx)
	return locationMsg{coords: coords, err: err}
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case locationMsg:
		if msg.err != nil {
			a.ctrl.LocationFailed(msg.err)
		} else {
			a.ctrl.LocationResolved(msg.coords)
		}

	case panTickMsg:
		cmds = append(cmds, a.mapView.Update(msg))

	case formReadyMsg:
		// redraw only

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		var cmd tea.Cmd
		a.stats, cmd = a.stats.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// A pending alert swallows the next key
		if a.alert != "" {
			a.alert = ""
			return a, nil
		}
		cmds = append(cmds, a.handleKey(msg))
	}

	cmds = append(cmds, a.mapView.takeCmds(), a.form.takeCmds())
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.screen == ScreenMap && a.form.Open() {
		cmd, action := a.form.Update(msg)
		switch action {
		case formSubmit:
			// Rejections are reported through Alert
			_ = a.ctrl.Submit(a.form.Input())
		case formCancel:
			a.ctrl.Cancel()
		case formTypeChanged:
			a.ctrl.ToggleType()
		}
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "1":
		a.screen = ScreenMap
		return nil
	case "2":
		a.screen = ScreenStats
		a.stats.SetSummary(analysis.Summarize(a.ctrl.Workouts()))
		return nil
	case "?":
		if a.screen != ScreenHelp {
			a.prevScreen = a.screen
			a.screen = ScreenHelp
		}
		return nil
	case "esc":
		if a.screen == ScreenHelp {
			a.screen = a.prevScreen
		}
		return nil
	}

	switch a.screen {
	case ScreenMap:
		if msg.String() == "tab" {
			if a.focus == focusMap {
				a.focus = focusList
			} else {
				a.focus = focusMap
			}
			return nil
		}
		if a.focus == focusList {
			return a.list.Update(msg)
		}
		return a.mapView.Update(msg)

	case ScreenStats:
		var cmd tea.Cmd
		a.stats, cmd = a.stats.Update(msg)
		return cmd
	}
	return nil
}

// layout splits the window between map and list
func (a *App) layout() {
	listWidth := 48
	mapWidth := a.width - listWidth - 6
	// header, nav, status, popups
	mapHeight := a.height - 14
	a.mapView.SetSize(mapWidth, mapHeight)
	a.list.SetHeight(a.height - 8)
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render("Workout Map")
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenMap:
		content = a.renderMapScreen()
	case ScreenStats:
		content = a.stats.View()
	case ScreenHelp:
		content = a.help.View()
	}

	sections := []string{header, nav, content}
	if a.alert != "" {
		sections = append(sections, "", alertStyle.Render(a.alert), helpDescStyle.Render("press any key"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderMapScreen() string {
	var left string
	switch a.ctrl.State() {
	case tracker.AwaitingLocation:
		left = "\n  Finding your location..."
	case tracker.LocationFailed:
		left = "\n  Map unavailable without a location."
	default:
		style := cardStyle
		if a.focus == focusMap && !a.form.Open() {
			style = focusedCardStyle
		}
		left = style.Render(a.mapView.View())
	}

	sidebar := []string{}
	if form := a.form.View(); form != "" {
		sidebar = append(sidebar, form)
	}
	listStyle := cardStyle
	listFocused := a.focus == focusList && !a.form.Open()
	if listFocused {
		listStyle = focusedCardStyle
	}
	sidebar = append(sidebar, listStyle.Width(46).Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Workouts"),
		a.list.View(listFocused),
	)))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", lipgloss.JoinVertical(lipgloss.Left, sidebar...))
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Map", ScreenMap},
		{"2", "Stats", ScreenStats},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
