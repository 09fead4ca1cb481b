package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordProviderCall(t *testing.T) {
	before := testutil.ToFloat64(ProviderCallsTotal.WithLabelValues("gemini", "generate", "error"))

	RecordProviderCall("gemini", "generate", errors.New("boom"), 10*time.Millisecond)

	after := testutil.ToFloat64(ProviderCallsTotal.WithLabelValues("gemini", "generate", "error"))
	assert.Equal(t, before+1, after)
}

func TestSetConversationsStored(t *testing.T) {
	SetConversationsStored(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(ConversationsStored))
}

func TestRecordAnalysis(t *testing.T) {
	before := testutil.ToFloat64(AnalysesTotal.WithLabelValues("image", "error"))
	RecordAnalysis("image", false)
	assert.Equal(t, before+1, testutil.ToFloat64(AnalysesTotal.WithLabelValues("image", "error")))
}
