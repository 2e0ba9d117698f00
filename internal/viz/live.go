package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nkoval/eulersim/internal/integrate"
	"github.com/nkoval/eulersim/internal/ode"
)

type tickMsg time.Time

// Live animates one integration run point by point, with the exact solution
// and the instantaneous error alongside.
type Live struct {
	model  *ode.LinearDecay
	cfg    ode.Config
	h      float64
	fps    int
	res    *ode.Result
	err    error
	cursor int
	paused bool
	width  int
	height int
}

func NewLive(m *ode.LinearDecay, cfg ode.Config, h float64, fps int) Live {
	l := Live{model: m, cfg: cfg, h: h, fps: fps, width: 80, height: 24}
	l.res, l.err = integrate.NewEuler().Integrate(context.Background(), m, cfg, h)
	return l
}

func (l Live) Init() tea.Cmd {
	if l.err != nil {
		return tea.Quit
	}
	return l.tick()
}

func (l Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(l.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			l.paused = !l.paused
		case "r":
			l.cursor = 0
			l.paused = false
		}
	case tea.WindowSizeMsg:
		l.width, l.height = msg.Width, msg.Height
	case tickMsg:
		if !l.paused && l.cursor < l.res.Steps() {
			l.cursor++
		}
		return l, l.tick()
	}
	return l, nil
}

func (l Live) View() string {
	if l.err != nil {
		return "error: " + l.err.Error() + "\n"
	}

	var b strings.Builder

	b.WriteString(Title.Render(fmt.Sprintf("euler decay  A=%g x0=%g h=%g", l.model.A(), l.model.X0(), l.h)))
	if l.h >= l.model.StabilityLimit() {
		b.WriteString("  " + Warn.Render(fmt.Sprintf("unstable: h >= 1/A = %g", l.model.StabilityLimit())))
	}
	b.WriteString("\n")

	cw := l.width - 4
	if cw < 20 {
		cw = 20
	}
	ch := l.height - 7
	if ch < 5 {
		ch = 5
	}
	canvas := NewCanvas(cw, ch)
	canvas.Curve(l.res.Values[:l.cursor+1])
	b.WriteString(Panel.Render(canvas.String()))
	b.WriteString("\n")

	t := l.res.Times[l.cursor]
	x := l.res.Values[l.cursor]
	exact := l.model.At(t)
	diff := x - exact
	if diff < 0 {
		diff = -diff
	}
	b.WriteString(fmt.Sprintf("  t=%s  euler=%s  exact=%s  err=%s\n",
		Value.Render(fmt.Sprintf("%.3f", t)),
		Value.Render(fmt.Sprintf("%+.6f", x)),
		Good.Render(fmt.Sprintf("%+.6f", exact)),
		Value.Render(fmt.Sprintf("%.2e", diff)),
	))
	b.WriteString(Dim.Render("  space pause · r restart · q quit") + "\n")

	return b.String()
}

// RunLive blocks until the user quits the animation.
func RunLive(m *ode.LinearDecay, cfg ode.Config, h float64, fps int) error {
	l := NewLive(m, cfg, h, fps)
	if l.err != nil {
		return l.err
	}
	_, err := tea.NewProgram(l).Run()
	return err
}
