// Package tui is the interactive design explorer: sliders over the
// hull parameter domain, live hydrostatics on every edit, and a
// surrogate-backed design-space map once background training finishes.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
	"github.com/san-kum/hullab/internal/sample"
	"github.com/san-kum/hullab/internal/surrogate"
)

const mapResolution = 20

var mapMetrics = []string{"gm", "hull speed", "draft"}

type model struct {
	params   hull.Params
	results  hydro.Results
	controls []control
	cursor   int

	store      *surrogate.Store
	trainer    *surrogate.Trainer
	training   bool
	progress   surrogate.Progress
	trainErr   error
	progressCh chan tea.Msg

	grid   *surrogate.Grid
	metric int

	width  int
	height int
}

type trainProgressMsg surrogate.Progress

type trainDoneMsg struct {
	ctx *surrogate.Context
	err error
}

// NewModel builds the explorer around a starting design.
func NewModel(p hull.Params) model {
	m := model{
		params:     hull.Clamp(p),
		controls:   designControls(),
		store:      &surrogate.Store{},
		trainer:    surrogate.NewTrainer(surrogate.DefaultTrainConfig()),
		progressCh: make(chan tea.Msg, 8),
		// Init launches the pipeline, so the model is born training.
		training: true,
		width:    100,
		height:   36,
	}
	m.results = hydro.Compute(m.params)
	return m
}

// Run launches the explorer; the surrogate trains in the background.
func Run(p hull.Params) error {
	prog := tea.NewProgram(NewModel(p))
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return m.startTraining()
}

// startTraining runs the sweep+train pipeline on its own goroutine,
// forwarding progress over the channel. Callers guard against a run
// already in flight.
func (m model) startTraining() tea.Cmd {
	ch := m.progressCh
	trainer := m.trainer
	go func() {
		ds, err := sample.SweepParallel(context.Background(), sample.DefaultBounds(), 0)
		if err != nil {
			ch <- trainDoneMsg{err: err}
			return
		}
		ctx, err := trainer.Train(context.Background(), ds, func(pr surrogate.Progress) {
			ch <- trainProgressMsg(pr)
		})
		ch <- trainDoneMsg{ctx: ctx, err: err}
	}()
	return waitForTraining(ch)
}

func waitForTraining(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case trainProgressMsg:
		m.training = true
		m.progress = surrogate.Progress(msg)
		return m, waitForTraining(m.progressCh)

	case trainDoneMsg:
		// A rejected duplicate start must not tear down the pump while
		// the surviving run is still reporting.
		if errors.Is(msg.err, surrogate.ErrTrainingInFlight) && !m.store.Ready() {
			return m, waitForTraining(m.progressCh)
		}
		m.training = false
		m.trainErr = msg.err
		if msg.err == nil {
			m.store.Publish(msg.ctx)
			m.refreshGrid()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.controls)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1, false)
	case "right", "l":
		m.adjust(+1, false)
	case "shift+left", "H":
		m.adjust(-1, true)
	case "shift+right", "L":
		m.adjust(+1, true)
	case "m":
		m.metric = (m.metric + 1) % len(mapMetrics)
	case "t":
		if !m.training && !m.store.Ready() {
			m.training = true
			return m, m.startTraining()
		}
	}
	return m, nil
}

func (m *model) adjust(dir int, big bool) {
	m.controls[m.cursor].adjust(&m.params, dir, big)
	m.results = hydro.Compute(m.params)
	m.refreshGrid()
}

// refreshGrid regenerates the map wholesale; it is never partially
// updated.
func (m *model) refreshGrid() {
	ctx := m.store.Current()
	if !ctx.Ready() {
		return
	}
	grid, err := surrogate.BuildGrid(ctx, m.params, mapResolution)
	if err != nil {
		return
	}
	m.grid = grid
}
