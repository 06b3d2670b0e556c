package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/browser"
	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/config"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepAccount wizardStep = iota
	stepDisplayName
	stepURL
	stepBrowser
	stepToggles
	stepBuild
	stepConfirm
)

// toggleField identifies a field in the toggles step.
type toggleField int

const (
	togAutoLogon toggleField = iota
	togInstall
	togFieldCount
)

// wizardModel drives the multi-step settings wizard.
type wizardModel struct {
	step     wizardStep
	settings config.Settings

	accountInput textinput.Model
	displayInput textinput.Model
	urlInput     textinput.Model
	buildInput   textinput.Model

	browserList list.Model

	togCursor toggleField

	errMsg string

	width  int
	height int
}

// browserItem implements list.Item for browser selection.
type browserItem struct {
	kind config.BrowserKind
	name string
}

func (b browserItem) Title() string       { return b.name }
func (b browserItem) Description() string { return string(b.kind) }
func (b browserItem) FilterValue() string { return b.name }

var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

func newWizardModel(defaults config.Settings, catalog browser.Catalog) wizardModel {
	ai := textinput.New()
	ai.Placeholder = defaults.AccountName
	ai.SetValue(defaults.AccountName)
	ai.Focus()
	ai.CharLimit = 20
	ai.Width = 40

	di := textinput.New()
	di.Placeholder = defaults.AccountDisplayName
	di.SetValue(defaults.AccountDisplayName)
	di.CharLimit = 64
	di.Width = 40

	ui := textinput.New()
	ui.Placeholder = defaults.TargetURL
	ui.SetValue(defaults.TargetURL)
	ui.CharLimit = 256
	ui.Width = 60

	bi := textinput.New()
	bi.Placeholder = strconv.Itoa(defaults.MinimumBuildNumber)
	bi.SetValue(strconv.Itoa(defaults.MinimumBuildNumber))
	bi.CharLimit = 8
	bi.Width = 12

	return wizardModel{
		step:         stepAccount,
		settings:     defaults,
		accountInput: ai,
		displayInput: di,
		urlInput:     ui,
		buildInput:   bi,
		browserList:  newBrowserList(defaults.Browser, catalog),
	}
}

func newBrowserList(current config.BrowserKind, catalog browser.Catalog) list.Model {
	kinds := []config.BrowserKind{config.BrowserEdge, config.BrowserChrome}

	items := make([]list.Item, 0, len(kinds))
	selected := 0
	for i, kind := range kinds {
		name := string(kind)
		if entry, err := catalog.Entry(kind); err == nil {
			name = entry.Name
		}
		items = append(items, browserItem{kind: kind, name: name})
		if kind == current {
			selected = i
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 10)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Select(selected)

	return l
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, settings, cmd).
// done=true with non-nil settings means the wizard completed.
// done=true with nil settings means the wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = sizeMsg.Width
		w.height = sizeMsg.Height
		return false, nil, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepAccount:
		return w.updateAccount(msg)
	case stepDisplayName:
		return w.updateDisplayName(msg)
	case stepURL:
		return w.updateURL(msg)
	case stepBrowser:
		return w.updateBrowser(msg)
	case stepToggles:
		return w.updateToggles(msg)
	case stepBuild:
		return w.updateBuild(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *config.Settings, tea.Cmd) {
	w.errMsg = ""
	switch w.step {
	case stepAccount:
		// Esc at first step cancels the wizard
		return true, nil, nil
	case stepDisplayName:
		w.step = stepAccount
		w.displayInput.Blur()
		w.accountInput.Focus()
	case stepURL:
		w.step = stepDisplayName
		w.urlInput.Blur()
		w.displayInput.Focus()
	case stepBrowser:
		w.step = stepURL
		w.urlInput.Focus()
	case stepToggles:
		w.step = stepBrowser
		return false, nil, nil
	case stepBuild:
		w.step = stepToggles
		w.buildInput.Blur()
		return false, nil, nil
	case stepConfirm:
		w.step = stepBuild
		w.buildInput.Focus()
	}
	return false, nil, textinput.Blink
}

func (w *wizardModel) updateAccount(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		name := strings.TrimSpace(w.accountInput.Value())
		if err := config.ValidateAccountName(name); err != nil {
			w.errMsg = err.Error()
			return false, nil, nil
		}
		w.errMsg = ""
		w.settings.AccountName = name
		w.step = stepDisplayName
		w.accountInput.Blur()
		w.displayInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.accountInput, cmd = w.accountInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateDisplayName(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		display := strings.TrimSpace(w.displayInput.Value())
		if display == "" {
			display = w.settings.AccountName
		}
		w.settings.AccountDisplayName = display
		w.step = stepURL
		w.displayInput.Blur()
		w.urlInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.displayInput, cmd = w.displayInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateURL(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		url := strings.TrimSpace(w.urlInput.Value())
		if url == "" {
			w.errMsg = "target URL cannot be empty"
			return false, nil, nil
		}
		w.errMsg = ""
		w.settings.TargetURL = url
		w.step = stepBrowser
		w.urlInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.urlInput, cmd = w.urlInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateBrowser(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if item, ok := w.browserList.SelectedItem().(browserItem); ok {
			w.settings.Browser = item.kind
			w.step = stepToggles
		}
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.browserList, cmd = w.browserList.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateToggles(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			w.step = stepBuild
			w.buildInput.Focus()
			return false, nil, textinput.Blink
		case "j", "down", "tab":
			w.togCursor = (w.togCursor + 1) % togFieldCount
		case "k", "up":
			w.togCursor = (w.togCursor - 1 + togFieldCount) % togFieldCount
		case " ":
			switch w.togCursor {
			case togAutoLogon:
				w.settings.EnableAutoLogon = !w.settings.EnableAutoLogon
			case togInstall:
				w.settings.InstallBrowserIfMissing = !w.settings.InstallBrowserIfMissing
			}
		}
	}
	return false, nil, nil
}

func (w *wizardModel) updateBuild(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		raw := strings.TrimSpace(w.buildInput.Value())
		if raw == "" {
			raw = "0"
		}
		build, err := strconv.Atoi(raw)
		if err != nil || build < 0 {
			w.errMsg = "minimum build must be a non-negative number"
			return false, nil, nil
		}
		w.errMsg = ""
		w.settings.MinimumBuildNumber = build
		w.step = stepConfirm
		w.buildInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.buildInput, cmd = w.buildInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *config.Settings, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			s := w.settings
			return true, &s, nil
		case "n":
			// Restart the wizard from the first step
			w.step = stepAccount
			w.accountInput.Focus()
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Kiosk Settings"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepAccount:
		b.WriteString(wizardLabelStyle.Render("Kiosk account name:"))
		b.WriteString("\n")
		b.WriteString(w.accountInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Local account the kiosk runs as. Max 20 characters."))
	case stepDisplayName:
		b.WriteString(wizardLabelStyle.Render("Display name:"))
		b.WriteString("\n")
		b.WriteString(w.displayInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Shown on the sign-in screen. Empty reuses the account name."))
	case stepURL:
		b.WriteString(wizardLabelStyle.Render("Target URL:"))
		b.WriteString("\n")
		b.WriteString(w.urlInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Page the kiosk browser opens, usually the CNC controller UI."))
	case stepBrowser:
		b.WriteString(wizardLabelStyle.Render("Select browser:"))
		b.WriteString("\n")
		b.WriteString(w.browserList.View())
	case stepToggles:
		b.WriteString(wizardLabelStyle.Render("Options:"))
		b.WriteString("\n\n")
		b.WriteString(w.renderToggle(togAutoLogon, "Enable auto-logon",
			"Sign the kiosk account in automatically at boot", w.settings.EnableAutoLogon))
		b.WriteString("\n")
		b.WriteString(w.renderToggle(togInstall, "Install browser if missing",
			"Let provisioning install the browser via winget", w.settings.InstallBrowserIfMissing))
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Space to toggle, Enter to continue, Esc to go back."))
	case stepBuild:
		b.WriteString(wizardLabelStyle.Render("Minimum Windows build:"))
		b.WriteString("\n")
		b.WriteString(w.buildInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Advisory gate; older builds prompt before provisioning. 0 disables it."))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Account:       %s\n", wizardValueStyle.Render(w.settings.AccountName)))
		b.WriteString(fmt.Sprintf("  Display name:  %s\n", wizardValueStyle.Render(w.settings.AccountDisplayName)))
		b.WriteString(fmt.Sprintf("  URL:           %s\n", wizardValueStyle.Render(w.settings.TargetURL)))
		b.WriteString(fmt.Sprintf("  Browser:       %s\n", wizardValueStyle.Render(string(w.settings.Browser))))
		b.WriteString(fmt.Sprintf("  Auto-logon:    %s\n", wizardValueStyle.Render(yesNo(w.settings.EnableAutoLogon))))
		b.WriteString(fmt.Sprintf("  Install:       %s\n", wizardValueStyle.Render(yesNo(w.settings.InstallBrowserIfMissing))))
		b.WriteString(fmt.Sprintf("  Min build:     %s\n", wizardValueStyle.Render(strconv.Itoa(w.settings.MinimumBuildNumber))))
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to save, n to restart, Esc to go back."))
	}

	if w.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(wizardErrorStyle.Render(w.errMsg))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Account"},
		{2, "URL"},
		{3, "Browser"},
		{4, "Options"},
		{5, "Confirm"},
	}

	currentStep := 1
	switch w.step {
	case stepAccount, stepDisplayName:
		currentStep = 1
	case stepURL:
		currentStep = 2
	case stepBrowser:
		currentStep = 3
	case stepToggles, stepBuild:
		currentStep = 4
	case stepConfirm:
		currentStep = 5
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == currentStep {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

func (w *wizardModel) renderToggle(field toggleField, name, desc string, on bool) string {
	cursor := " "
	if w.togCursor == field {
		cursor = ">"
	}

	checked := " "
	if on {
		checked = "x"
	}

	line := fmt.Sprintf("  %s [%s] %s", cursor, checked, name)
	if w.togCursor == field {
		return selectedStyle.Render(line) + "\n" + wizardDimStyle.Render("      "+desc)
	}
	return line + "\n" + wizardDimStyle.Render("      "+desc)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// wizardProgram adapts wizardModel to the tea.Model interface for
// standalone use.
type wizardProgram struct {
	wizard   wizardModel
	result   *config.Settings
	done     bool
	quitting bool
}

func (p wizardProgram) Init() tea.Cmd {
	return p.wizard.Init()
}

func (p wizardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, settings, cmd := p.wizard.Update(msg)
	if done {
		p.result = settings
		p.done = true
		p.quitting = true
		return p, tea.Quit
	}
	return p, cmd
}

func (p wizardProgram) View() string {
	if p.quitting {
		return ""
	}
	return p.wizard.View()
}

// RunWizard runs the interactive settings wizard starting from
// defaults. Returns nil settings when the operator cancels.
func RunWizard(defaults config.Settings, catalog browser.Catalog) (*config.Settings, error) {
	p := tea.NewProgram(wizardProgram{wizard: newWizardModel(defaults, catalog)}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(wizardProgram).result, nil
}
