package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/finproj/internal/breakeven"
	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/compare"
	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/ledger"
	"github.com/rgehrsitz/finproj/internal/tui/scenes"
	"github.com/rgehrsitz/finproj/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene
	keys          keyMap
	help          help.Model

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration
	results    *domain.Results

	calcEngine    *calculation.CalculationEngine
	compareEngine *compare.CompareEngine
	solver        *breakeven.Solver

	selectedScenario string

	homeModel      *scenes.HomeModel
	scenariosModel *scenes.ScenariosModel
	scheduleModel  *scenes.ScheduleModel
	cashFlowModel  *scenes.CashFlowModel
	healthModel    *scenes.HealthModel
	compareModel   *scenes.CompareModel
	goalModel      *scenes.GoalModel

	err error

	loading        bool
	loadingMessage string
	spinner        spinner.Model
}

// NewModel creates a new application model for the configuration at configPath.
func NewModel(configPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = InfoStyle

	calcEngine := calculation.NewCalculationEngine()
	return Model{
		currentScene:   SceneHome,
		keys:           defaultKeyMap(),
		help:           help.New(),
		configPath:     configPath,
		calcEngine:     calcEngine,
		compareEngine:  compare.NewCompareEngine(calcEngine),
		solver:         breakeven.NewDefaultSolver(calcEngine),
		homeModel:      scenes.NewHomeModel(),
		scenariosModel: scenes.NewScenariosModel(),
		scheduleModel:  scenes.NewScheduleModel(),
		cashFlowModel:  scenes.NewCashFlowModel(),
		healthModel:    scenes.NewHealthModel(),
		compareModel:   scenes.NewCompareModel(),
		goalModel:      scenes.NewGoalModel(),
		width:          80,
		height:         24,
		loading:        true,
		loadingMessage: "Loading " + configPath + "...",
		spinner:        sp,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadResultsCmd(m.configPath, m.calcEngine))
}

// CurrentScene returns the scene on screen.
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// SelectedScenario returns the name of the selected scenario.
func (m Model) SelectedScenario() string {
	return m.selectedScenario
}

// Err returns the error on screen, if any.
func (m Model) Err() error {
	return m.err
}

// loadResultsCmd loads the configuration, opens its ledger and runs every
// simulation.
func loadResultsCmd(path string, engine *calculation.CalculationEngine) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}

		src, closeSource, err := ledger.SourceFor(cfg)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		defer closeSource()

		results, err := engine.Run(context.Background(), cfg, src)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		return ResultsLoadedMsg{Config: cfg, Results: results}
	}
}

func compareCmd(engine *compare.CompareEngine, cfg *domain.Configuration, req tuimsg.ComparisonRequestedMsg) tea.Cmd {
	return func() tea.Msg {
		set, err := engine.Compare(context.Background(), cfg, compare.CompareOptions{
			BaseScenarioName: req.BaseScenario,
			Templates:        req.Templates,
		})
		return tuimsg.ComparisonCompleteMsg{Set: set, Err: err}
	}
}

func goalSeekCmd(solver *breakeven.Solver, req breakeven.Request) tea.Cmd {
	return func() tea.Msg {
		result, err := solver.Solve(context.Background(), req)
		return tuimsg.GoalSeekCompleteMsg{Result: result, Err: err}
	}
}

// selectScenario points the per-scenario scenes at name.
func (m *Model) selectScenario(name string) {
	m.selectedScenario = name
	var result *domain.ScenarioResult
	var scenario *domain.Scenario
	if m.results != nil {
		result = m.results.Scenario(name)
	}
	if m.config != nil {
		scenario = m.config.FindScenario(name)
	}
	m.scheduleModel.SetResult(result)
	m.compareModel.SetScenario(scenario)
	m.goalModel.SetScenario(scenario)
}

func (m *Model) resize() {
	contentHeight := m.height - 4
	m.homeModel.SetSize(m.width, contentHeight)
	m.scenariosModel.SetSize(m.width, contentHeight)
	m.scheduleModel.SetSize(m.width, contentHeight)
	m.cashFlowModel.SetSize(m.width, contentHeight)
	m.healthModel.SetSize(m.width, contentHeight)
	m.compareModel.SetSize(m.width, contentHeight)
	m.goalModel.SetSize(m.width, contentHeight)
	m.help.Width = m.width
}
