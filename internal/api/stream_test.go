package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streamEnvelope struct {
	Type       string          `json:"type"`
	Points     []pointResponse `json:"points"`
	ID         string          `json:"id"`
	Samples    int             `json:"samples"`
	FlightTime any             `json:"flightTime"`
	MaxHeight  any             `json:"maxHeight"`
	Range      any             `json:"range"`
	Kind       string          `json:"kind"`
	Error      string          `json:"error"`
}

func dialStream(t *testing.T, serverURL, query string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/api/v1/launch/stream?" + query
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if conn != nil {
		t.Cleanup(func() { conn.Close() })
	}
	return conn, resp, err
}

func readEnvelope(t *testing.T, conn *websocket.Conn) streamEnvelope {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg streamEnvelope
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestStreamSendsBatchesAndSummary(t *testing.T) {
	ts, _ := newTestServer(t, 0)

	conn, resp, err := dialStream(t, ts.URL, "speed=10&angle=90&gravity=10&step=0.5&batch=3")
	require.NoError(t, err)
	runID := resp.Header.Get(runIDHeader)
	assert.NotEmpty(t, runID)

	first := readEnvelope(t, conn)
	assert.Equal(t, MessagePoints, first.Type)
	require.Len(t, first.Points, 3)
	assert.Equal(t, 0.0, first.Points[0].T)

	second := readEnvelope(t, conn)
	assert.Equal(t, MessagePoints, second.Type)
	require.Len(t, second.Points, 1)
	assert.Equal(t, 1.5, second.Points[0].T)

	summary := readEnvelope(t, conn)
	assert.Equal(t, MessageSummary, summary.Type)
	assert.Equal(t, runID, summary.ID)
	assert.Equal(t, 4, summary.Samples)
	assert.InDelta(t, 2.0, summary.FlightTime, 1e-12)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

func TestStreamSummarySurfacesNonFiniteValues(t *testing.T) {
	ts, _ := newTestServer(t, 0)

	conn, _, err := dialStream(t, ts.URL, "speed=1e200&angle=45&gravity=1e200&step=0.01&batch=1000")
	require.NoError(t, err)

	points := readEnvelope(t, conn)
	assert.Equal(t, MessagePoints, points.Type)

	summary := readEnvelope(t, conn)
	assert.Equal(t, MessageSummary, summary.Type)
	assert.Equal(t, len(points.Points), summary.Samples)
	assert.Equal(t, "+Inf", summary.MaxHeight)
	assert.Equal(t, "+Inf", summary.Range)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

func TestStreamReportsLaunchError(t *testing.T) {
	ts, _ := newTestServer(t, 0)

	conn, _, err := dialStream(t, ts.URL, "angle=0")
	require.NoError(t, err)

	msg := readEnvelope(t, conn)
	assert.Equal(t, MessageError, msg.Type)
	assert.Equal(t, KindInvalidFlightTime, msg.Kind)
	assert.NotEmpty(t, msg.Error)

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

func TestStreamRejectsBadQuery(t *testing.T) {
	ts, _ := newTestServer(t, 0)

	_, resp, err := dialStream(t, ts.URL, "speed=fast")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseStreamQuery(t *testing.T) {
	defaults := ballistic.DefaultLaunchParameters()

	params, batch, err := parseStreamQuery(url.Values{"angle": {"45"}, "y": {"2"}}, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaultStreamBatch, batch)
	assert.Equal(t, 45.0, params.Angle)
	assert.Equal(t, 2.0, params.LaunchY)
	assert.Equal(t, defaults.Speed, params.Speed)

	_, _, err = parseStreamQuery(url.Values{"batch": {"0"}}, defaults)
	assert.Error(t, err)

	_, batch, err = parseStreamQuery(url.Values{"batch": {"10"}}, defaults)
	require.NoError(t, err)
	assert.Equal(t, 10, batch)
}
