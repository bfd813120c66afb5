package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/manifest"
	"github.com/quantmind-br/westconf-go/internal/profile"
	"github.com/quantmind-br/westconf-go/internal/selection"
)

type state int

const (
	stateLoading state = iota
	stateMenu
	stateForm
	statePreview
	stateDone
	stateError
)

// menu actions that are not category forms
const (
	actionSettings = "settings"
	actionPreview  = "preview"
	actionWrite    = "write"
	actionQuit     = "quit"
)

type menuItem struct {
	label    string
	category manifest.Category
	action   string
}

// Options configures the interactive session
type Options struct {
	Explorer    *manifest.Explorer
	ManifestURL string
	OutputPath  string
	ProfilePath string // empty disables profile saving
	Accessible  bool
}

// Model is the bubbletea model for the configurator
type Model struct {
	state state
	opts  Options

	passthrough *manifest.Passthrough
	structure   *domain.ImportStructure
	groups      map[manifest.Category][]*domain.ImportEntry
	values      *Values

	menu        []menuItem
	menuIndex   int
	currentForm *huh.Form
	preview     string
	message     string
	err         error

	width  int
	height int
}

type loadedMsg struct {
	passthrough *manifest.Passthrough
	structure   *domain.ImportStructure
	err         error
}

// NewModel creates a configurator model
func NewModel(opts Options) Model {
	return Model{state: stateLoading, opts: opts}
}

func (m Model) Init() tea.Cmd {
	return m.load
}

// load runs the fetch-and-analyze sequence off the interactive loop; the
// result is marshaled back as a loadedMsg.
func (m Model) load() tea.Msg {
	passthrough, structure, err := m.opts.Explorer.LoadAndAnalyze(context.Background())
	return loadedMsg{passthrough: passthrough, structure: structure, err: err}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateForm && m.currentForm != nil {
			form, cmd := m.currentForm.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.currentForm = f
			}
			return m, cmd
		}
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.passthrough = msg.passthrough
		m.structure = msg.structure
		m.groups = manifest.GroupByCategory(msg.structure)
		m.values = NewValues(msg.structure, selection.Defaults(msg.structure), msg.passthrough.GroupFilter)
		m.menu = buildMenu(m.groups)
		m.state = stateMenu
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case statePreview:
			m.state = stateMenu
			return m, nil
		case stateDone, stateError:
			return m, tea.Quit
		}
	}

	if m.state == stateForm && m.currentForm != nil {
		form, cmd := m.currentForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.currentForm = f
		}
		if m.currentForm.State == huh.StateCompleted {
			m.state = stateMenu
			return m, nil
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}

	case "down", "j":
		if m.menuIndex < len(m.menu)-1 {
			m.menuIndex++
		}

	case "enter":
		return m.selectMenuItem(m.menu[m.menuIndex])
	}
	return m, nil
}

func (m Model) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item.action {
	case actionQuit:
		return m, tea.Quit

	case actionSettings:
		m.currentForm = m.withAccessibility(CreateSettingsForm(m.values))
		m.state = stateForm
		return m, m.currentForm.Init()

	case actionPreview:
		out, err := m.generate()
		if err != nil {
			m.err = err
			m.state = stateError
			return m, nil
		}
		m.preview = string(out)
		m.state = statePreview
		return m, nil

	case actionWrite:
		if err := m.write(); err != nil {
			m.err = err
			m.state = stateError
			return m, nil
		}
		m.state = stateDone
		return m, nil

	default:
		m.currentForm = m.withAccessibility(CreateCategoryForm(item.category, m.groups[item.category], m.values))
		m.state = stateForm
		return m, m.currentForm.Init()
	}
}

func (m Model) withAccessibility(form *huh.Form) *huh.Form {
	if m.opts.Accessible {
		return form.WithTheme(GetAccessibleTheme()).WithAccessible(true)
	}
	return form
}

// generate renders the manifest from the current form state
func (m Model) generate() ([]byte, error) {
	set := m.values.Selections(m.structure)
	doc, err := manifest.Generate(m.passthrough, set.Flatten(), manifest.GenerateOptions{
		UseRemotes:      m.values.UseRemotes,
		UseDefaults:     m.values.UseDefaults,
		UseWestCommands: m.values.UseWestCommands,
		GroupFilters:    m.values.GroupFilterList(),
	})
	if err != nil {
		return nil, err
	}
	return manifest.EncodeWithHeader(doc, time.Now())
}

// write saves the generated manifest and, when configured, the profile
func (m *Model) write() error {
	out, err := m.generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.opts.OutputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	m.message = fmt.Sprintf("Manifest written to %s", m.opts.OutputPath)

	if m.opts.ProfilePath != "" {
		set := m.values.Selections(m.structure)
		p := profile.FromSelections(set)
		p.GroupFilters = m.values.GroupFilterList()
		p.UseRemotes = m.values.UseRemotes
		p.UseDefaults = m.values.UseDefaults
		p.UseWestCommands = m.values.UseWestCommands
		p.ManifestURL = m.opts.ManifestURL
		if err := profile.Save(p, m.opts.ProfilePath); err != nil {
			return err
		}
		m.message += fmt.Sprintf(", profile saved to %s", m.opts.ProfilePath)
	}
	return nil
}

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return TitleStyle.Render("NXP West Manifest Configurator") + "\n" +
			"Fetching manifest and resolving import structure..."

	case stateMenu:
		return m.viewMenu()

	case stateForm:
		if m.currentForm != nil {
			return m.currentForm.View()
		}
		return ""

	case statePreview:
		return TitleStyle.Render("Preview") + "\n" +
			PreviewStyle.Render(m.preview) + "\n" +
			HelpStyle.Render("press any key to return")

	case stateDone:
		return SuccessStyle.Render(m.message) + "\n" +
			HelpStyle.Render("press any key to exit")

	case stateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			HelpStyle.Render("press any key to exit")
	}
	return ""
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("NXP West Manifest Configurator"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d imports resolved from %s", m.structure.Len(), m.opts.ManifestURL)))
	b.WriteString("\n\n")

	for i, item := range m.menu {
		cursor := "  "
		style := UnselectedStyle
		if i == m.menuIndex {
			cursor = "> "
			style = SelectedStyle
		}
		b.WriteString(cursor + style.Render(item.label) + "\n")
	}

	b.WriteString(HelpStyle.Render("up/down: navigate | enter: select | q: quit"))
	return b.String()
}

// buildMenu lists non-empty categories in fixed order, then the actions
func buildMenu(groups map[manifest.Category][]*domain.ImportEntry) []menuItem {
	var items []menuItem
	for _, cat := range manifest.Categories() {
		entries := groups[cat]
		if len(entries) == 0 {
			continue
		}
		items = append(items, menuItem{
			label:    fmt.Sprintf("%s (%d)", cat, len(entries)),
			category: cat,
		})
	}
	items = append(items,
		menuItem{label: "Settings", action: actionSettings},
		menuItem{label: "Preview manifest", action: actionPreview},
		menuItem{label: "Write manifest", action: actionWrite},
		menuItem{label: "Quit", action: actionQuit},
	)
	return items
}
