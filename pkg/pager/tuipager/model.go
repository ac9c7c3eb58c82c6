// Package tuipager runs a pager.Controller in a terminal with Bubble Tea.
// Arrow keys swipe, digits select, and mouse drags scrub the transition.
package tuipager

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/constants"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
	"github.com/BrandonKowalski/pager/pkg/pager/locale"
)

// footerHeight is the indicator line plus the help line.
const footerHeight = 2

// frameMsg drives Controller.Advance while a transition runs.
type frameMsg time.Time

// Model is the Bubble Tea model of the terminal host.
type Model struct {
	ctrl  *pager.Controller
	pages []Page
	pan   *pager.PanRecognizer
	loc   *locale.Localizer

	width   int
	height  int
	ticking bool
	last    time.Time
	start   time.Time
	now     func() time.Time

	log *slog.Logger
}

// New creates a model showing pages with the given settings.
func New(pages []Page, settings pager.Settings, lang string) Model {
	ctrl := pager.NewWithSettings(settings)
	screens := make([]pager.Screen, len(pages))
	for i, p := range pages {
		screens[i] = p
	}
	ctrl.SetScreens(screens)

	var langs []string
	if lang != "" {
		langs = []string{lang}
	}

	return Model{
		ctrl:  ctrl,
		pages: pages,
		pan:   pager.NewPanRecognizer(settings.PanSlop),
		loc:   locale.New(langs...),
		start: time.Now(),
		now:   time.Now,
		log:   logging.Internal(),
	}
}

// Controller returns the controller behind the model.
func (m Model) Controller() *pager.Controller {
	return m.ctrl
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ctrl.Layout(pager.Rect{
			W: float64(m.width * cellWidth),
			H: float64(max(m.height-footerHeight, 0) * cellHeight),
		}, pager.Padding{})
		return m, nil

	case tea.KeyMsg:
		if quit := m.handleKey(msg); quit {
			return m, tea.Quit
		}
		return m.schedule()

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m.schedule()

	case frameMsg:
		now := time.Time(msg)
		m.ctrl.Advance(now.Sub(m.last))
		m.last = now
		if m.ctrl.IsAnimating() {
			return m, tick()
		}
		m.ticking = false
		return m, nil
	}

	return m, nil
}

// schedule starts the frame ticker when a transition is running and no
// tick is outstanding.
func (m Model) schedule() (tea.Model, tea.Cmd) {
	if m.ticking || !m.ctrl.IsAnimating() {
		return m, nil
	}
	m.ticking = true
	m.last = m.now()
	return m, tick()
}

func tick() tea.Cmd {
	return tea.Tick(constants.DefaultFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) bool {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		return true

	case "left", "h", "pgup":
		m.ctrl.Swipe(pager.SwipeRight)

	case "right", "l", "pgdown":
		m.ctrl.Swipe(pager.SwipeLeft)

	case "home":
		m.ctrl.SelectScreen(0, true)

	case "end":
		m.ctrl.SelectScreen(len(m.pages)-1, true)

	case "a":
		next := pager.AnimatorParallax
		if m.ctrl.Animator() == pager.Animator(m.ctrl.Animators().Parallax) {
			next = pager.AnimatorSlide
		}
		m.ctrl.SetAnimatorKind(next)
		m.log.Debug("Animator changed", "animator", next.String())

	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.pages) {
			m.ctrl.SelectScreen(n-1, true)
		}
	}
	return false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := cellPoint(msg.X, msg.Y)
	at := m.now().Sub(m.start)

	var (
		ev pager.PanEvent
		ok bool
	)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pan.Press(p, at)
		}
	case tea.MouseActionMotion:
		ev, ok = m.pan.Move(p, at)
	case tea.MouseActionRelease:
		ev, ok = m.pan.Release(p, at)
	}
	if ok {
		m.ctrl.HandlePan(ev)
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if len(m.pages) == 0 {
		return m.loc.NoPages()
	}

	var layers []Page
	for _, s := range m.ctrl.Hierarchy() {
		if p, ok := s.(Page); ok {
			layers = append(layers, p)
		}
	}

	lines := compose(layers, m.width, max(m.height-footerHeight, 0))
	lines = append(lines, m.indicator(), HelpStyle.Render(m.loc.PageCount(len(m.pages))+" · ←/→ page · 1-9 jump · a animator · q quit"))
	return strings.Join(lines, "\n")
}

func (m Model) indicator() string {
	active := activeIndex(m.ctrl)

	dots := make([]string, len(m.pages))
	for i := range m.pages {
		if i == active {
			dots[i] = ActiveDotStyle.Render("●")
		} else {
			dots[i] = DotStyle.Render("○")
		}
	}
	return strings.Join(dots, " ") + "  " + CaptionStyle.Render(m.loc.PageIndicator(active, len(m.pages)))
}

// activeIndex is the target of a transition once it is more than half
// way, otherwise the selection.
func activeIndex(c *pager.Controller) int {
	if from, to, _, progress, ok := c.Transition(); ok {
		if progress >= 0.5 {
			return to
		}
		return from
	}
	i, _ := c.SelectedIndex()
	return i
}

// Run shows pages in the terminal until the user quits or ctx is done.
func Run(ctx context.Context, pages []Page, settings pager.Settings, lang string) error {
	if len(pages) == 0 {
		return pager.ErrNoScreens
	}

	p := tea.NewProgram(
		New(pages, settings, lang),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return pager.NewInfrastructureError("run_terminal", err)
	}
	return nil
}
