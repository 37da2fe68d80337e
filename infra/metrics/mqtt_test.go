package metrics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/haulplan/core/search"
)

type fakePublisher struct {
	topics []string
	msgs   []any
}

func (f *fakePublisher) Publish(topic string, v any) error {
	f.topics = append(f.topics, topic)
	f.msgs = append(f.msgs, v)
	return nil
}

func TestMQTTSinkTopics(t *testing.T) {
	pub := &fakePublisher{}
	id := uuid.New()
	sink := NewMQTTSink(pub, "")
	require.NoError(t, sink.RecordSearchEvent(search.Event{RunID: id, Strategy: "tabu", Kind: search.EventImproved, Iteration: 4, BestScore: 0.3}))

	require.Len(t, pub.topics, 1)
	assert.Equal(t, "haulplan/search/"+id.String()+"/improved", pub.topics[0])
	msg, ok := pub.msgs[0].(eventMessage)
	require.True(t, ok)
	assert.Equal(t, "tabu", msg.Strategy)
	assert.Equal(t, 4, msg.Iteration)
	assert.Equal(t, 0.3, msg.BestScore)

	custom := NewMQTTSink(pub, "fleet/plans")
	require.NoError(t, custom.RecordSearchEvent(search.Event{RunID: id, Kind: search.EventFinished}))
	assert.Equal(t, "fleet/plans/"+id.String()+"/finished", pub.topics[1])
}
