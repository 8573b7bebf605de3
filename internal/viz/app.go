package viz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/experiment"
	"github.com/san-kum/collide/internal/export"
	"github.com/san-kum/collide/internal/hypothesis"
)

const (
	canvasWidth  = 60
	canvasHeight = 16
	chartWidth   = 44
	chartHeight  = 6

	// GIFPath is where the g key saves the rendered animation.
	GIFPath = "collide.gif"
)

type field int

const (
	fieldMass1 field = iota
	fieldVelocity1
	fieldMass2
	fieldVelocity2
	fieldHypothesis
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldMass1:      "mass 1 (kg)",
	fieldVelocity1:  "velocity 1 (m/s)",
	fieldMass2:      "mass 2 (kg)",
	fieldVelocity2:  "velocity 2 (m/s)",
	fieldHypothesis: "hypothesis",
}

var questions = []string{
	"Is momentum conserved?",
	"Is kinetic energy conserved?",
	"What happens if one particle is much heavier?",
	"What kind of collision is this (elastic, inelastic)?",
}

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// FrameMsg advances playback. Messages from an earlier play request are
// ignored.
type FrameMsg struct{ Gen int }

// App is the interactive lab: an input form, the 3D approach view with a
// play control, the conservation results and the hypothesis box.
type App struct {
	exp       *experiment.Experiment
	submitter *hypothesis.Submitter
	logger    *zap.Logger

	defaults experiment.Inputs
	inputs   experiment.Inputs
	run      *experiment.Run

	focus   field
	editing bool
	editBuf string
	text    string

	frame   int
	playing bool
	gen     int
	delay   time.Duration

	scene  Scene
	camera *Camera
	canvas *Canvas
	theme  Theme
	st     styles

	notice     string
	noticeKind noticeKind
	showHelp   bool
	quitting   bool
}

// NewApp builds the lab from the experiment's configuration and computes
// the initial run.
func NewApp(exp *experiment.Experiment, submitter *hypothesis.Submitter, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := exp.Config()
	theme := GetTheme(cfg.Theme)
	in := experiment.InputsFromConfig(cfg)
	a := App{
		exp:       exp,
		submitter: submitter,
		logger:    logger,
		defaults:  in,
		inputs:    in,
		delay:     cfg.FrameDelay(),
		scene:     DefaultScene(),
		camera:    NewCamera(),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		theme:     theme,
		st:        newStyles(theme),
	}
	a.recompute()
	return a
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case FrameMsg:
		return a.advance(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		a.quitting = true
		return a, tea.Quit
	}
	switch {
	case a.focus == fieldHypothesis:
		return a.textKey(msg)
	case a.editing:
		return a.editKey(msg), nil
	}
	return a.navKey(msg)
}

func (a App) navKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "tab", "down", "j":
		a.focus = (a.focus + 1) % fieldCount
	case "shift+tab", "up", "k":
		a.focus = (a.focus + fieldCount - 1) % fieldCount
	case "left", "h":
		a.adjust(-1)
	case "right", "l":
		a.adjust(1)
	case "enter":
		a.editing, a.editBuf = true, strconv.FormatFloat(a.value(a.focus), 'f', -1, 64)
	case "p", " ":
		return a.togglePlay()
	case "r":
		a.frame, a.playing = 0, false
	case "[":
		a.playing = false
		a.frame = max(0, a.frame-1)
	case "]":
		a.playing = false
		a.frame = min(a.lastFrame(), a.frame+1)
	case "d":
		a.inputs = a.defaults
		a.recompute()
	case "t":
		a.theme = NextTheme(a.theme)
		a.st = newStyles(a.theme)
	case "c":
		a.camera.Reset()
	case "x":
		a.camera.RotateX(rotateStep)
	case "X":
		a.camera.RotateX(-rotateStep)
	case "y":
		a.camera.RotateY(rotateStep)
	case "Y":
		a.camera.RotateY(-rotateStep)
	case "z":
		a.camera.RotateZ(rotateStep)
	case "Z":
		a.camera.RotateZ(-rotateStep)
	case "+", "=":
		a.camera.ZoomIn()
	case "-", "_":
		a.camera.ZoomOut()
	case "g":
		a.saveGIF()
	case "?":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a App) editKey(msg tea.KeyMsg) App {
	switch msg.String() {
	case "enter":
		v, err := strconv.ParseFloat(strings.TrimSpace(a.editBuf), 64)
		a.editing, a.editBuf = false, ""
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			a.setNotice(noticeWarning, fmt.Sprintf("%s: not a number", fieldLabels[a.focus]))
			return a
		}
		a.set(a.focus, v)
	case "esc":
		a.editing, a.editBuf = false, ""
	case "backspace":
		if len(a.editBuf) > 0 {
			a.editBuf = a.editBuf[:len(a.editBuf)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if (r >= '0' && r <= '9') || strings.ContainsRune(".-+eE", r) {
					a.editBuf += string(r)
				}
			}
		}
	}
	return a
}

func (a App) textKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.submit()
	case tea.KeyBackspace:
		if r := []rune(a.text); len(r) > 0 {
			a.text = string(r[:len(r)-1])
		}
	case tea.KeyTab:
		a.focus = fieldMass1
	case tea.KeyShiftTab:
		a.focus = fieldVelocity2
	case tea.KeyEsc:
		a.focus = fieldMass1
	case tea.KeyCtrlP:
		return a.togglePlay()
	case tea.KeyCtrlU:
		a.text = ""
	case tea.KeySpace:
		a.text += " "
	case tea.KeyRunes:
		a.text += string(msg.Runes)
	}
	return a, nil
}

func (a App) value(f field) float64 {
	switch f {
	case fieldMass1:
		return a.inputs.Particle1.Mass
	case fieldVelocity1:
		return a.inputs.Particle1.Velocity
	case fieldMass2:
		return a.inputs.Particle2.Mass
	case fieldVelocity2:
		return a.inputs.Particle2.Velocity
	}
	return 0
}

func isMass(f field) bool { return f == fieldMass1 || f == fieldMass2 }

// adjust nudges the focused numeric field by one step.
func (a *App) adjust(dir float64) {
	if a.focus == fieldHypothesis {
		return
	}
	step := config.VelocityStep
	if isMass(a.focus) {
		step = config.MassStep
	}
	v := math.Round((a.value(a.focus)+dir*step)*1e6) / 1e6
	if isMass(a.focus) && v < config.MinMass {
		v = config.MinMass
	}
	a.set(a.focus, v)
}

// set stores v in f and recomputes. Masses below the minimum are refused.
func (a *App) set(f field, v float64) {
	if isMass(f) && v < config.MinMass {
		a.setNotice(noticeWarning, fmt.Sprintf("%s must be at least %.1f", fieldLabels[f], config.MinMass))
		return
	}
	switch f {
	case fieldMass1:
		a.inputs.Particle1.Mass = v
	case fieldVelocity1:
		a.inputs.Particle1.Velocity = v
	case fieldMass2:
		a.inputs.Particle2.Mass = v
	case fieldVelocity2:
		a.inputs.Particle2.Velocity = v
	default:
		return
	}
	a.recompute()
}

// recompute reruns the experiment for the current inputs and rewinds
// playback.
func (a *App) recompute() {
	a.frame, a.playing = 0, false
	a.gen++
	run, err := a.exp.Run(a.inputs)
	if err != nil {
		a.logger.Warn("recompute failed", zap.Error(err))
		a.setNotice(noticeError, err.Error())
		return
	}
	a.run = run
	if a.noticeKind == noticeError {
		a.clearNotice()
	}
}

func (a *App) submit() {
	if a.submitter == nil {
		a.setNotice(noticeError, "hypothesis log is not configured")
		return
	}
	_, err := a.submitter.Submit(a.inputs.Particle1, a.inputs.Particle2, a.text)
	switch {
	case errors.Is(err, hypothesis.ErrEmptySubmission):
		a.setNotice(noticeWarning, "Please enter some text before submitting.")
	case err != nil:
		a.setNotice(noticeError, err.Error())
	default:
		a.setNotice(noticeSuccess, "Your hypothesis was recorded.")
	}
}

// saveGIF renders every frame with the current camera and writes GIFPath.
func (a *App) saveGIF() {
	if a.run == nil {
		return
	}
	frames := RenderAll(a.scene, a.camera, a.run.Trajectory, canvasWidth, canvasHeight)
	if err := export.SaveGIF(GIFPath, frames, export.DefaultDotSize, export.GIFDelay(a.delay)); err != nil {
		a.logger.Warn("gif export failed", zap.Error(err))
		a.setNotice(noticeError, err.Error())
		return
	}
	a.logger.Info("gif saved", zap.String("path", GIFPath), zap.Int("frames", len(frames)))
	a.setNotice(noticeSuccess, "Animation saved to "+GIFPath)
}

func (a *App) setNotice(kind noticeKind, msg string) { a.noticeKind, a.notice = kind, msg }
func (a *App) clearNotice()                          { a.noticeKind, a.notice = noticeNone, "" }

func (a App) lastFrame() int {
	if a.run == nil || len(a.run.Trajectory) == 0 {
		return 0
	}
	return len(a.run.Trajectory) - 1
}

func (a App) tick() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.delay, func(time.Time) tea.Msg { return FrameMsg{Gen: gen} })
}

// togglePlay starts playback from the current frame, or from the start when
// the last frame is showing, and pauses a running playback.
func (a App) togglePlay() (App, tea.Cmd) {
	if a.playing {
		a.playing = false
		a.gen++
		return a, nil
	}
	if a.run == nil {
		return a, nil
	}
	if a.frame >= a.lastFrame() {
		a.frame = 0
	}
	a.playing = true
	a.gen++
	return a, a.tick()
}

func (a App) advance(msg FrameMsg) (App, tea.Cmd) {
	if !a.playing || msg.Gen != a.gen {
		return a, nil
	}
	a.frame++
	if a.frame >= a.lastFrame() {
		a.frame = a.lastFrame()
		a.playing = false
		return a, nil
	}
	return a, a.tick()
}

// Frame returns the index of the frame on screen.
func (a App) Frame() int { return a.frame }

// Playing reports whether playback is running.
func (a App) Playing() bool { return a.playing }

// Inputs returns the current form values.
func (a App) Inputs() experiment.Inputs { return a.inputs }

// Run returns the last successful computation.
func (a App) Run() *experiment.Run { return a.run }

// Notice returns the text of the last notice.
func (a App) Notice() string { return a.notice }

func (a App) View() string {
	if a.quitting {
		return ""
	}
	left := a.viewScene()
	right := a.st.stats.Render(a.viewStats())
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if a.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left, a.viewHelp(), main)
	}
	return main
}

func (a App) viewScene() string {
	var b strings.Builder
	b.WriteString(a.st.title.Render("3D COLLISION ANIMATION") + "\n")
	if a.run == nil {
		b.WriteString(a.st.muted.Render("no data") + "\n")
		return b.String()
	}

	p := a.run.Trajectory.Frame(a.frame)
	a.scene.Draw(a.canvas, a.camera, p)
	b.WriteString(a.st.panel.Render(a.canvas.String()) + "\n")

	status := a.st.warning.Render("■ PAUSED")
	if a.playing {
		status = a.st.success.Render("▶ PLAYING")
	}
	total := len(a.run.Trajectory)
	progress := 0.0
	if total > 1 {
		progress = float64(a.frame) / float64(total-1)
	}
	b.WriteString(fmt.Sprintf("%s  frame %2d/%d  t=%.2fs  %s\n", status, a.frame+1, total, p.T, a.st.muted.Render(ProgressBar(progress, 20))))
	b.WriteString(a.st.p1.Render("■ particle 1") + a.st.value.Render(fmt.Sprintf(" x=%7.2f   ", p.Position1)))
	b.WriteString(a.st.p2.Render("◆ particle 2") + a.st.value.Render(fmt.Sprintf(" x=%7.2f", p.Position2)) + "\n\n")
	b.WriteString(a.st.graph.Render(PositionsChart(a.run.Trajectory, chartWidth, chartHeight, "position x vs frame (blue: 1, red: 2)")) + "\n")
	return b.String()
}

func (a App) viewStats() string {
	var b strings.Builder

	b.WriteString(a.st.header.Render("PARTICLE SETTINGS") + "\n")
	for f := fieldMass1; f < fieldHypothesis; f++ {
		val := fmt.Sprintf("%8.2f", a.value(f))
		if a.editing && f == a.focus {
			val = fmt.Sprintf("%8s", a.editBuf+"_")
		}
		if f == a.focus {
			b.WriteString(a.st.active.Render("▸ "+fmt.Sprintf("%-20s", fieldLabels[f])) + a.st.active.Render(val) + "\n")
		} else {
			b.WriteString("  " + a.st.label.Render(fieldLabels[f]) + a.st.value.Render(val) + "\n")
		}
	}

	b.WriteString("\n" + a.st.header.Render("COLLISION RESULTS") + "\n")
	if a.run != nil {
		for _, q := range a.run.Conservation() {
			b.WriteString(a.st.label.Render(q.Name+" before") + a.st.value.Render(q.FormatBefore()) + "\n")
			b.WriteString(a.st.label.Render(q.Name+" after") + a.st.value.Render(q.FormatAfter()) + "\n")
		}
		r := a.run.Result
		b.WriteString(a.st.label.Render("final velocity 1") + a.st.value.Render(fmt.Sprintf("%.2f m/s", r.Velocity1Final)) + "\n")
		b.WriteString(a.st.label.Render("final velocity 2") + a.st.value.Render(fmt.Sprintf("%.2f m/s", r.Velocity2Final)) + "\n")
	}

	b.WriteString("\n" + a.st.header.Render("QUESTIONS TO CONSIDER") + "\n")
	for _, q := range questions {
		b.WriteString(a.st.muted.Render("• "+q) + "\n")
	}

	b.WriteString("\n" + a.st.header.Render("YOUR HYPOTHESIS") + "\n")
	prompt := "What do you expect to happen in the collision?"
	if a.focus == fieldHypothesis {
		b.WriteString(a.st.active.Render("▸ "+prompt) + "\n")
		b.WriteString(a.st.input.Render(a.text+"█") + "\n")
	} else {
		b.WriteString(a.st.muted.Render("  "+prompt) + "\n")
		b.WriteString(a.st.input.Render(a.text) + "\n")
	}

	switch a.noticeKind {
	case noticeSuccess:
		b.WriteString(a.st.success.Render("✔ "+a.notice) + "\n")
	case noticeWarning:
		b.WriteString(a.st.warning.Render("! "+a.notice) + "\n")
	case noticeError:
		b.WriteString(a.st.errStyle.Render("✘ "+a.notice) + "\n")
	}

	b.WriteString("\n" + a.st.keyHints("tab", "field", "h/l", "adjust", "enter", "edit/submit") + "\n")
	b.WriteString(a.st.keyHints("p", "play", "r", "rewind", "[ ]", "step", "?", "help", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewHelp() string {
	rows := [][2]string{
		{"tab / shift+tab", "next / previous field"},
		{"h/l ←/→", "adjust value by 0.1"},
		{"enter", "type a value / submit hypothesis"},
		{"esc", "leave hypothesis box"},
		{"p / space", "play or pause the animation"},
		{"ctrl+p", "play from the hypothesis box"},
		{"r", "rewind to the first frame"},
		{"[ ]", "step one frame back / forward"},
		{"x y z / X Y Z", "rotate camera"},
		{"+ / -", "zoom"},
		{"c", "reset camera"},
		{"d", "restore default inputs"},
		{"t", "cycle theme"},
		{"g", "save animation as " + GIFPath},
		{"q / ctrl+c", "quit"},
	}
	var b strings.Builder
	b.WriteString(a.st.title.Render("KEYBOARD SHORTCUTS") + "\n")
	for _, r := range rows {
		b.WriteString(a.st.key.Render(fmt.Sprintf("  %-16s", r[0])) + a.st.muted.Render(r[1]) + "\n")
	}
	return a.st.panel.Render(b.String())
}

// RunInteractive starts the lab in the alternate screen and blocks until the
// user quits.
func RunInteractive(exp *experiment.Experiment, submitter *hypothesis.Submitter, logger *zap.Logger) error {
	_, err := tea.NewProgram(NewApp(exp, submitter, logger), tea.WithAltScreen()).Run()
	return err
}
