package prescription

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rx-tui/rx-tui/internal/components"
	"github.com/rx-tui/rx-tui/internal/linearizer"
	rx "github.com/rx-tui/rx-tui/internal/prescription"
	"github.com/rx-tui/rx-tui/internal/store"
	"github.com/rx-tui/rx-tui/internal/sysinfo"
	"github.com/rx-tui/rx-tui/internal/theme"
)

type focusTarget int

const (
	focusLanguage focusTarget = iota
	focusMode
	focusFreeText
	focusMedication
	focusDosage
	focusUnit
	focusFrequency
	focusBodyPart
	focusSubmit
	focusTable
)

// Guided field indices into Model.fields.
const (
	fieldMedication = iota
	fieldDosage
	fieldUnit
	fieldFrequency
	fieldBodyPart
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Medication:",
	"Dosage:",
	"Unit:",
	"Frequency:",
	"Body Part (Optional):",
}

type dialog struct {
	kind  theme.DialogKind
	title string
	body  string
}

// Deps are the collaborators the form needs. Linearizer is required; a nil
// Store starts an empty one.
type Deps struct {
	Linearizer linearizer.Linearizer
	Store      *store.Store
	Logger     zerolog.Logger
	State      rx.FormState
	// LinearizerStatus is shown in the status bar, e.g. the resolved binary path.
	LinearizerStatus string
	// SampleSystem feeds the status bar; nil disables sampling.
	SampleSystem func() (sysinfo.Snapshot, error)
}

// Model is the prescription form: language and mode selectors, one visible
// input panel and the results table.
type Model struct {
	width  int
	height int

	state rx.FormState
	focus focusTarget

	languageGroup *components.RadioGroup
	modeGroup     *components.RadioGroup
	freeText      textarea.Model
	fields        [fieldCount]textinput.Model
	table         table.Model
	transcript    viewport.Model
	spinner       spinner.Model
	keys          keyMap

	linearizer       linearizer.Linearizer
	store            *store.Store
	logger           zerolog.Logger
	linearizerStatus string
	sampleSystem     func() (sysinfo.Snapshot, error)

	busy   bool
	dialog *dialog
	status string
	system sysinfo.Snapshot
}

type sysTickMsg time.Time

type sysSampleMsg struct {
	snapshot sysinfo.Snapshot
	err      error
}

func sysTickEvery() tea.Cmd {
	return tea.Every(2*time.Second, func(t time.Time) tea.Msg {
		return sysTickMsg(t)
	})
}

func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorAccent)

	ta := textarea.New()
	ta.Placeholder = "Apply 2 drops to the affected eye twice a day"
	ta.CharLimit = 1000
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(5)

	var fields [fieldCount]textinput.Model
	for i := range fields {
		ti := textinput.New()
		ti.CharLimit = 80
		ti.Width = 30
		fields[i] = ti
	}
	fields[fieldMedication].Placeholder = "Ibuprofen"
	fields[fieldDosage].Placeholder = "1"
	fields[fieldUnit].Placeholder = "Tablet"
	fields[fieldFrequency].Placeholder = "OnceADay"

	languageOptions := make([]components.RadioOption, 0, 2)
	for _, l := range rx.Languages() {
		languageOptions = append(languageOptions, components.RadioOption{Label: l.Label(), Value: l})
	}
	modeOptions := make([]components.RadioOption, 0, 2)
	for _, md := range rx.Modes() {
		modeOptions = append(modeOptions, components.RadioOption{Label: md.Label(), Value: md})
	}

	st := deps.Store
	if st == nil {
		st = store.New()
	}

	m := Model{
		width:            100,
		height:           40,
		state:            deps.State,
		languageGroup:    components.NewRadioGroup("Select Language:", languageOptions...),
		modeGroup:        components.NewRadioGroup("Select Mode:", modeOptions...),
		freeText:         ta,
		fields:           fields,
		transcript:       viewport.New(60, 4),
		spinner:          s,
		keys:             defaultKeyMap(),
		linearizer:       deps.Linearizer,
		store:            st,
		logger:           deps.Logger.With().Str("component", "form").Logger(),
		linearizerStatus: deps.LinearizerStatus,
		sampleSystem:     deps.SampleSystem,
		status:           "Ready",
	}
	m.languageGroup.SelectByValue(m.state.Language)
	m.modeGroup.SelectByValue(m.state.Mode)
	m.transcript.SetContent(DimPlaceholder)
	m.updateTable()
	m.setFocus(m.firstPanelFocus())
	return m
}

// State returns the current language and mode selection.
func (m Model) State() rx.FormState {
	return m.state
}

// focusOrder lists the focusable targets for the visible panel.
func (m Model) focusOrder() []focusTarget {
	order := []focusTarget{focusLanguage, focusMode}
	if m.state.Mode == rx.Guided {
		order = append(order, focusMedication, focusDosage, focusUnit, focusFrequency, focusBodyPart)
	} else {
		order = append(order, focusFreeText)
	}
	return append(order, focusSubmit, focusTable)
}

func (m Model) firstPanelFocus() focusTarget {
	if m.state.Mode == rx.Guided {
		return focusMedication
	}
	return focusFreeText
}

func (m *Model) moveFocus(delta int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.setFocus(order[idx])
}

func (m *Model) setFocus(f focusTarget) {
	m.focus = f

	m.languageGroup.SetFocused(f == focusLanguage)
	m.modeGroup.SetFocused(f == focusMode)

	if f == focusFreeText {
		m.freeText.Focus()
	} else {
		m.freeText.Blur()
	}

	for i := range m.fields {
		if fieldFocus(i) == f {
			m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}

	if f == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func fieldFocus(i int) focusTarget {
	return focusMedication + focusTarget(i)
}

// fieldIndex maps a focus target back to its guided field, or -1.
func fieldIndex(f focusTarget) int {
	if f >= focusMedication && f <= focusBodyPart {
		return int(f - focusMedication)
	}
	return -1
}

func (m Model) guidedInput() rx.GuidedInput {
	return rx.GuidedInput{
		Medication: m.fields[fieldMedication].Value(),
		Dosage:     m.fields[fieldDosage].Value(),
		Unit:       m.fields[fieldUnit].Value(),
		Frequency:  m.fields[fieldFrequency].Value(),
		BodyPart:   m.fields[fieldBodyPart].Value(),
	}
}
