package dashboard

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

// slowSink records grid parameter notices, stalling on selected cell counts.
type slowSink struct {
	mu     sync.Mutex
	counts []int
	stall  map[int]time.Duration
}

func (s *slowSink) Send(_ context.Context, notice panel.Notice) error {
	params, ok := notice.(panel.GridParametersChanged)
	if !ok {
		return nil
	}
	time.Sleep(s.stall[params.CellCount])

	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = append(s.counts, params.CellCount)
	return nil
}

func (s *slowSink) cellCounts() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.counts...)
}

func TestProgram_GridParametersArriveInEditOrder(t *testing.T) {
	sink := &slowSink{stall: map[int]time.Duration{9: 50 * time.Millisecond}}
	m := NewModel(Options{Outbound: sink})

	p := tea.NewProgram(m,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)

	done := make(chan tea.Model, 1)
	go func() {
		final, err := p.Run()
		assert.NoError(t, err)
		done <- final
	}()

	p.Send(HostEventMsg{Event: panel.FrameSelected{Selected: true}})
	p.Send(HostEventMsg{Event: panel.PossibleCellCounts{Possible: []int{4, 9, 16, 25}}})
	p.Send(tea.KeyMsg{Type: tea.KeyRight})
	p.Send(tea.KeyMsg{Type: tea.KeyRight})

	require.Eventually(t, func() bool {
		return len(sink.cellCounts()) == 3
	}, 2*time.Second, 5*time.Millisecond)
	p.Quit()

	var final tea.Model
	select {
	case final = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("program did not exit")
	}

	assert.Equal(t, []int{4, 9, 16}, sink.cellCounts())
	model, ok := final.(Model)
	require.True(t, ok)
	assert.Equal(t, 16, model.State().CellCount)
}

func TestOutbox_FlushDrainsQueueOnce(t *testing.T) {
	sink := &slowSink{}
	box := newOutbox(sink)

	first := sendCmd(box, []panel.Notice{panel.GridParametersChanged{CellCount: 4}})
	second := sendCmd(box, []panel.Notice{panel.GridParametersChanged{CellCount: 9}})

	// Running the later command first still delivers in queue order.
	msg := second()
	assert.Equal(t, NoticesSentMsg{
		Notices: []panel.Notice{panel.GridParametersChanged{CellCount: 4}, panel.GridParametersChanged{CellCount: 9}},
		Errs:    []error{nil, nil},
	}, msg)
	assert.Nil(t, first())
	assert.Equal(t, []int{4, 9}, sink.cellCounts())
	assert.Nil(t, sendCmd(box, nil))
}
