package backend

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gridpanel/internal/logger"
	"github.com/alexisbeaulieu97/gridpanel/internal/panel"
)

func TestRecorderKeepsOrderAndFilters(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	ctx := context.Background()
	require.NoError(t, rec.Send(ctx, panel.ExactFitChanged{ExactFit: true}))
	require.NoError(t, rec.Send(ctx, panel.CellCountChanged{CellCount: "9"}))
	require.NoError(t, rec.Send(ctx, panel.ExactFitChanged{ExactFit: false}))

	assert.Len(t, rec.Notices(), 3)
	assert.Equal(t, []panel.Notice{
		panel.ExactFitChanged{ExactFit: true},
		panel.ExactFitChanged{ExactFit: false},
	}, rec.Named(panel.NoticeExactFitChanged))

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, panel.ExactFitChanged{ExactFit: false}, last)

	rec.Reset()
	_, ok = rec.Last()
	assert.False(t, ok)
	assert.Empty(t, rec.Notices())
}

func TestLogSinkLogsAndForwards(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	rec := NewRecorder()
	sink := NewLogSink(log, rec)

	require.NoError(t, sink.Send(context.Background(), panel.GridParametersChanged{CellCount: 16, Padding: 5}))

	assert.Equal(t, []panel.Notice{panel.GridParametersChanged{CellCount: 16, Padding: 5}}, rec.Notices())
	out := buf.String()
	assert.Contains(t, out, `"notice":"grid-parameters-changed"`)
	assert.Contains(t, out, `"cell_count":16`)
	assert.Contains(t, out, `"padding":5`)
}

func TestLogSinkReportsDeliveryFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	boom := errors.New("host unavailable")
	sink := NewLogSink(log, OutboundFunc(func(context.Context, panel.Notice) error {
		return boom
	}))

	err = sink.Send(context.Background(), panel.CreateGridRequested{CellCount: 4})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "notice delivery failed")
	assert.Contains(t, buf.String(), "host unavailable")
}

func TestLogSinkWithoutNext(t *testing.T) {
	t.Parallel()

	sink := NewLogSink(logger.Nop(), nil)
	assert.NoError(t, sink.Send(context.Background(), panel.AutoPopulateChanged{AutoPopulate: true}))
	assert.NoError(t, sink.Send(context.Background(), nil))
}
