package render

import (
	"bytes"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func launched(t *testing.T, step float64) (*ballistic.Simulation, []ballistic.TrajectoryPoint) {
	t.Helper()
	sim := ballistic.CreateSimulation(10, 45, 10, 0, 0, step)
	points, err := sim.Launch()
	require.NoError(t, err)
	return sim, points
}

func TestPlotEncodesPNG(t *testing.T) {
	sim, points := launched(t, 0.01)

	var buf bytes.Buffer
	err := Plot(&buf, sim, points, PlotOptions{Width: 4 * vg.Inch, Height: 3 * vg.Inch, DPI: 50})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestPlotBackwardsLaunch(t *testing.T) {
	sim := ballistic.CreateSimulation(10, 135, 10, 5, 0, 0.01)
	points, err := sim.Launch()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Plot(&buf, sim, points, PlotOptions{DPI: 30}))
	assert.NotZero(t, buf.Len())
}

func TestSavePlot(t *testing.T) {
	sim, points := launched(t, 0.05)
	path := filepath.Join(t.TempDir(), DefaultPlotName(time.Unix(1700000000, 0)))

	require.NoError(t, SavePlot(path, sim, points, PlotOptions{DPI: 30}))
	assert.True(t, strings.HasSuffix(path, "projectile_t=1700000000.png"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	assert.NoError(t, err)
}

func TestAnimateEncodesFrames(t *testing.T) {
	sim, points := launched(t, 0.1)
	require.Len(t, points, 15)

	var buf bytes.Buffer
	require.NoError(t, Animate(&buf, sim, points, AnimationOptions{Width: 320, Height: 240}))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, len(points))
	assert.Equal(t, 4, anim.Delay[0])
	assert.Equal(t, 320, anim.Config.Width)
	assert.Equal(t, 240, anim.Config.Height)
}

func TestAnimateCapsFrames(t *testing.T) {
	sim, points := launched(t, 0.001)

	var buf bytes.Buffer
	require.NoError(t, Animate(&buf, sim, points, AnimationOptions{Width: 160, Height: 120, FPS: 10, MaxFrames: 12}))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 12)
	assert.Equal(t, 10, anim.Delay[0])
}

func TestFrameIndexes(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, frameIndexes(3, 10))
	assert.Equal(t, []int{0, 2, 4, 6, 9}, frameIndexes(10, 5))
	assert.Equal(t, []int{9}, frameIndexes(10, 1))
}

func TestEmptyTrajectory(t *testing.T) {
	sim := ballistic.CreateSimulation(10, 45, 10, 0, 0, 0.1)
	var buf bytes.Buffer

	assert.ErrorIs(t, Plot(&buf, sim, nil, PlotOptions{}), ErrEmptyTrajectory)
	assert.ErrorIs(t, Animate(&buf, sim, sim.Trajectory(), AnimationOptions{}), ErrEmptyTrajectory)
	assert.Empty(t, ASCII(sim, nil, ASCIIOptions{}))
}

func TestASCII(t *testing.T) {
	sim, points := launched(t, 0.01)

	chart := ASCII(sim, points, ASCIIOptions{Width: 40, Height: 8})
	assert.Contains(t, chart, "theta=45, v=10, g=10")
	assert.GreaterOrEqual(t, strings.Count(chart, "\n"), 8)
}
