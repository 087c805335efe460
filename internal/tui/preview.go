package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readme-agent/internal/catalog"
	"github.com/muurk/readme-agent/internal/clipboard"
	"github.com/muurk/readme-agent/internal/generate"
	"github.com/muurk/readme-agent/internal/logging"
	"github.com/muurk/readme-agent/internal/ui"
)

// Rows above the document viewport: label, input box (3), button row,
// blank, loading banner, card header (3).
const previewChromeRows = 10

// Preview is the right-hand pane: the URL form, the generate action and
// the document card for the active category.
type Preview struct {
	URLInput textinput.Model
	Spinner  spinner.Model
	Viewport viewport.Model

	active    string
	machine   generate.Machine
	generator generate.Generator
	clip      clipboard.Writer

	ctx       context.Context
	cancel    context.CancelFunc
	repoURL   string
	startedAt time.Time

	Width  int
	Height int
}

// NewPreview creates a preview pane showing the given category.
// A nil ctx is treated as context.Background.
func NewPreview(ctx context.Context, active string, g generate.Generator, clip clipboard.Writer) Preview {
	if ctx == nil {
		ctx = context.Background()
	}
	if g == nil {
		g = generate.NewMockGenerator(generate.DefaultDelay)
	}
	if clip == nil {
		clip = clipboard.Default()
	}

	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	// Initialize URL input
	input := textinput.New()
	input.Placeholder = URLExample
	input.Prompt = ""
	input.CharLimit = 512
	input.Width = 50

	vp := viewport.New(60, MinPreviewHeight)
	vp.KeyMap = viewport.KeyMap{
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
		),
	}

	p := Preview{
		URLInput:  input,
		Spinner:   s,
		Viewport:  vp,
		generator: g,
		clip:      clip,
		ctx:       ctx,
		Width:     60,
		Height:    MinPreviewHeight + previewChromeRows,
	}
	return p.SetActive(active)
}

// SetActive shows the document for id and scrolls back to the top.
func (p Preview) SetActive(id string) Preview {
	p.active = id
	p.Viewport.SetContent(p.renderDocument())
	p.Viewport.GotoTop()
	return p
}

// Active returns the category currently shown
func (p Preview) Active() string {
	return p.active
}

// DisplayedText returns the document text for the active category
func (p Preview) DisplayedText() string {
	return catalog.ContentOrFallback(p.active)
}

// Generating reports whether a generation run is in progress
func (p Preview) Generating() bool {
	return p.machine.Generating()
}

// State returns the generate state
func (p Preview) State() generate.State {
	return p.machine.State()
}

// RepoURL returns the URL of the current or last accepted run
func (p Preview) RepoURL() string {
	return p.repoURL
}

// Focus moves keyboard focus to the URL input
func (p Preview) Focus() (Preview, tea.Cmd) {
	cmd := p.URLInput.Focus()
	return p, tea.Batch(cmd, textinput.Blink)
}

// Blur removes keyboard focus from the URL input
func (p Preview) Blur() Preview {
	p.URLInput.Blur()
	return p
}

// Focused reports whether the URL input has focus
func (p Preview) Focused() bool {
	return p.URLInput.Focused()
}

// SetSize resizes the pane and its document viewport
func (p Preview) SetSize(width, height int) Preview {
	p.Width = width
	p.Height = height

	inputWidth := width - 6 // border + padding
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.URLInput.Width = inputWidth

	vpHeight := height - previewChromeRows
	if vpHeight < MinPreviewHeight {
		vpHeight = MinPreviewHeight
	}
	p.Viewport.Width = width
	p.Viewport.Height = vpHeight
	p.Viewport.SetContent(p.renderDocument())
	return p
}

// Copy writes the displayed document to the clipboard. The confirmation
// is shown whether or not the write succeeded; failures only reach the log.
func (p Preview) Copy() tea.Cmd {
	id, text, clip := p.active, p.DisplayedText(), p.clip
	return func() tea.Msg {
		err := clip.WriteAll(text)
		logging.LogClipboard(id, len(text), err)
		return notifyMsg{notification: ui.CopiedNotification()}
	}
}

// Submit starts a generation run for the URL in the input.
//
// A blank URL produces a destructive notification and leaves the state
// Idle. A submit while a run is in progress is ignored.
func (p Preview) Submit() (Preview, tea.Cmd) {
	if p.machine.Generating() {
		logging.Debug("Generate ignored, already running")
		return p, nil
	}

	url, err := generate.ValidateURL(p.URLInput.Value())
	if err != nil {
		logging.LogGenerate("rejected", "", p.machine.Run(), 0, err)
		return p, notify(ui.ErrorNotification(err))
	}

	next, err := p.machine.Start()
	if err != nil {
		return p, nil
	}
	p.machine = next

	ctx, cancel := context.WithCancel(p.ctx)
	p.cancel = cancel
	p.repoURL = url
	p.startedAt = time.Now()

	logging.LogGenerate("started", url, next.Run(), 0, nil)

	return p, tea.Batch(
		p.Spinner.Tick,
		runGenerator(ctx, p.generator, next.Run(), url),
	)
}

// Cancel stops the running generation, if any
func (p Preview) Cancel() Preview {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	return p
}

// runGenerator runs g off the event loop and reports the result
func runGenerator(ctx context.Context, g generate.Generator, run int, url string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := g.Generate(ctx, url)
		if err != nil && !generate.IsCancelled(err) {
			var genErr *generate.Error
			if !errors.As(err, &genErr) {
				err = generate.NewFailedError("Documentation generation failed", err)
			}
		}
		return generateDoneMsg{
			run:     run,
			repoURL: url,
			elapsed: time.Since(start),
			err:     err,
		}
	}
}

// Update handles generation results, spinner ticks, input and scrolling
func (p Preview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	switch msg := msg.(type) {
	case generateDoneMsg:
		return p.finish(msg)

	case spinner.TickMsg:
		if !p.Generating() {
			return p, nil
		}
		var cmd tea.Cmd
		p.Spinner, cmd = p.Spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		var cmd tea.Cmd
		if p.URLInput.Focused() {
			p.URLInput, cmd = p.URLInput.Update(msg)
			return p, cmd
		}
		p.Viewport, cmd = p.Viewport.Update(msg)
		return p, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		p.Viewport, cmd = p.Viewport.Update(msg)
		return p, cmd
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	p.URLInput, cmd = p.URLInput.Update(msg)
	return p, cmd
}

// finish applies a completion message. Results from runs other than the
// current one are dropped.
func (p Preview) finish(msg generateDoneMsg) (Preview, tea.Cmd) {
	if !p.machine.Current(msg.run) {
		logging.Debug("Dropping stale generate result")
		return p, nil
	}

	p.machine = p.machine.Finish()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}

	switch {
	case msg.err == nil:
		logging.LogGenerate("completed", msg.repoURL, msg.run, msg.elapsed, nil)
		return p, notify(ui.GeneratedNotification())

	case generate.IsCancelled(msg.err):
		logging.LogGenerate("cancelled", msg.repoURL, msg.run, msg.elapsed, nil)
		return p, nil

	default:
		logging.LogGenerate("failed", msg.repoURL, msg.run, msg.elapsed, msg.err)
		return p, notify(ui.ErrorNotification(msg.err))
	}
}

// renderDocument renders the active text as preformatted lines
func (p Preview) renderDocument() string {
	width := p.Viewport.Width
	if width <= 0 {
		width = p.Width
	}
	return DocumentStyle.Width(width).Render(p.DisplayedText())
}

// View renders the pane
func (p Preview) View(focused bool) string {
	inputStyle := BlurredInputStyle
	if focused {
		inputStyle = FocusedInputStyle
	}

	var button string
	if p.Generating() {
		button = DisabledButtonStyle.Render("Generating...")
	} else {
		button = ButtonStyle.Render("Generate Docs")
	}

	banner := ""
	if p.Generating() {
		banner = p.Spinner.View() + " " + LoadingStyle.Render(LoadingText)
	}

	title := CardTitleStyle.Render(catalog.Title(p.active))
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		OutlineButtonStyle.Render("⧉ Copy"),
		" ",
		InertButtonStyle.Render("↓ Download"),
		" ",
		InertButtonStyle.Render("◉ Preview"),
	)
	gap := p.Width - lipgloss.Width(title) - lipgloss.Width(buttons)
	if gap < 1 {
		gap = 1
	}
	cardHeader := lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		lipgloss.NewStyle().Width(gap).Render(""),
		buttons,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render(URLLabel),
		inputStyle.Width(p.Width-2).Render(p.URLInput.View()),
		button,
		"",
		banner,
		cardHeader,
		p.Viewport.View(),
	)
}
