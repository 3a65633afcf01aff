// Command ballisticlaunch launches a projectile under uniform gravity and
// reports the flight, optionally saving a plot, an animation or printing a
// terminal chart. A YAML scenario runs a batch of launches.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/config"
	"github.com/gehtsoft-usa/go_ballisticlaunch/internal/logging"
	"github.com/gehtsoft-usa/go_ballisticlaunch/render"
)

const autoName = "auto"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

type options struct {
	params       ballistic.LaunchParameters
	speedUnit    string
	gravityUnit  string
	distanceUnit string
	plot         string
	animation    string
	ascii        bool
	scenario     string
	maxSamples   int
	logLevel     string
	logFormat    string
}

type units struct {
	speed    byte
	gravity  byte
	distance byte
}

// job is one launch and the outputs requested for it.
type job struct {
	name      string
	params    ballistic.LaunchParameters
	plot      string
	animation string
	ascii     bool
}

// parameterFlags are the launch parameters a scenario file sets itself.
var parameterFlags = map[string]bool{
	"speed": true, "angle": true, "gravity": true, "x": true, "y": true, "step": true,
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	defaults := ballistic.DefaultLaunchParameters()
	var o options

	fs := flag.NewFlagSet("ballisticlaunch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&o.params.Speed, "speed", defaults.Speed, "initial speed")
	fs.Float64Var(&o.params.Angle, "angle", defaults.Angle, "launch angle in degrees")
	fs.Float64Var(&o.params.Gravity, "gravity", defaults.Gravity, "gravitational acceleration")
	fs.Float64Var(&o.params.LaunchX, "x", defaults.LaunchX, "horizontal launch coordinate")
	fs.Float64Var(&o.params.LaunchY, "y", defaults.LaunchY, "vertical launch coordinate")
	fs.Float64Var(&o.params.Step, "step", defaults.Step, "time between two samples in seconds")
	fs.StringVar(&o.speedUnit, "speed-unit", "m/s", "unit of -speed (m/s, km/h, ft/s, mph, kt)")
	fs.StringVar(&o.gravityUnit, "gravity-unit", "m/s2", "unit of -gravity (m/s2, ft/s2, g)")
	fs.StringVar(&o.distanceUnit, "distance-unit", "m", "unit of -x, -y and of the reported distances")
	fs.StringVar(&o.plot, "plot", "", `save a scatter plot to this PNG file ("auto" for a timestamped name)`)
	fs.StringVar(&o.animation, "animation", "", `save an animation to this GIF file ("auto" for `+render.DefaultAnimationName+`)`)
	fs.BoolVar(&o.ascii, "ascii", false, "print a terminal chart of the height")
	fs.StringVar(&o.scenario, "scenario", "", "run the launches of a YAML scenario file")
	fs.IntVar(&o.maxSamples, "max-samples", config.DefaultMaxSamples, "refuse launches producing more samples than this")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&o.logFormat, "log-format", "text", "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.maxSamples <= 0 {
		return options{}, fmt.Errorf("-max-samples must be positive, got %d", o.maxSamples)
	}
	if o.scenario != "" {
		var conflicts []string
		fs.Visit(func(f *flag.Flag) {
			if parameterFlags[f.Name] {
				conflicts = append(conflicts, "-"+f.Name)
			}
		})
		if len(conflicts) > 0 {
			return options{}, fmt.Errorf("%v cannot be combined with -scenario, set the values in the scenario file", conflicts)
		}
	}
	return o, nil
}

func (o options) units() (units, error) {
	var u units
	var err error
	if u.speed, err = unit.ParseVelocityUnit(o.speedUnit); err != nil {
		return u, err
	}
	if u.gravity, err = unit.ParseAccelerationUnit(o.gravityUnit); err != nil {
		return u, err
	}
	if u.distance, err = unit.ParseDistanceUnit(o.distanceUnit); err != nil {
		return u, err
	}
	return u, nil
}

// toSI converts parameters given in the selected units.
func (u units) toSI(p ballistic.LaunchParameters) ballistic.LaunchParameters {
	p.Speed = unit.MustCreateVelocity(p.Speed, u.speed).In(unit.VelocityMPS)
	p.Gravity = unit.MustCreateAcceleration(p.Gravity, u.gravity).In(unit.AccelerationMPS2)
	p.LaunchX = unit.MustCreateDistance(p.LaunchX, u.distance).In(unit.DistanceMeter)
	p.LaunchY = unit.MustCreateDistance(p.LaunchY, u.distance).In(unit.DistanceMeter)
	return p
}

func (u units) distanceString(meters float64) string {
	return unit.MustCreateDistance(meters, unit.DistanceMeter).Convert(u.distance).String()
}

func (o options) jobs(u units) ([]job, error) {
	if o.scenario == "" {
		return []job{{
			name:      "launch",
			params:    u.toSI(o.params),
			plot:      o.plot,
			animation: o.animation,
			ascii:     o.ascii,
		}}, nil
	}

	s, err := config.LoadScenario(o.scenario)
	if err != nil {
		return nil, err
	}
	jobs := make([]job, 0, len(s.Launches))
	for _, l := range s.Launches {
		jobs = append(jobs, job{
			name:      l.Name,
			params:    u.toSI(l.Parameters),
			plot:      l.Plot,
			animation: l.Animation,
			ascii:     l.ASCII || o.ascii,
		})
	}
	return jobs, nil
}

func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	u, err := opts.units()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	ctx := context.Background()
	logger := logging.NewWithWriter(stderr, logging.Config{Level: opts.logLevel, Format: opts.logFormat})

	jobs, err := opts.jobs(u)
	if err != nil {
		logger.Error(ctx, "cannot load scenario", logging.String("path", opts.scenario), logging.Err(err))
		return 1
	}

	code := 0
	for _, j := range jobs {
		log := logger.With(logging.String("launch", j.name))
		if err := launch(ctx, j, u, opts.maxSamples, len(jobs) > 1, stdout, log, now); err != nil {
			log.Error(ctx, "launch failed", logging.Err(err))
			code = 1
		}
	}
	return code
}

func launch(ctx context.Context, j job, u units, maxSamples int, batch bool, stdout io.Writer, log logging.Logger, now func() time.Time) error {
	sim := ballistic.CreateSimulationFromParameters(j.params)

	var samplesErr *ballistic.TooManySamplesError
	if _, err := sim.SampleCount(maxSamples); errors.As(err, &samplesErr) {
		return err
	}

	start := time.Now()
	points, err := sim.Launch()
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s\n", j.name)
	fmt.Fprintf(stdout, "  flight time: %.6fs\n", sim.FlightTime())
	fmt.Fprintf(stdout, "  max height:  %s\n", u.distanceString(sim.MaxHeight()))
	fmt.Fprintf(stdout, "  range:       %s\n", u.distanceString(sim.Range()))
	fmt.Fprintf(stdout, "  samples:     %d\n", len(points))
	fmt.Fprintf(stdout, "Simulation concluded with exec time: %g seconds\n", elapsed.Seconds())

	if j.ascii {
		fmt.Fprintln(stdout, render.ASCII(sim, points, render.ASCIIOptions{}))
	}

	if path := outputPath(j.plot, j.name, render.DefaultPlotName(now()), batch); path != "" {
		if err := render.SavePlot(path, sim, points, render.PlotOptions{}); err != nil {
			return err
		}
		log.Info(ctx, "plot saved", logging.String("path", path))
	}
	if path := outputPath(j.animation, j.name, render.DefaultAnimationName, batch); path != "" {
		if err := render.SaveAnimation(path, sim, points, render.AnimationOptions{}); err != nil {
			return err
		}
		log.Info(ctx, "animation saved", logging.String("path", path))
	}
	return nil
}

// outputPath resolves "auto" to the default name. The launch name is
// prepended in a batch so the launches do not overwrite each other.
func outputPath(value, name, defaultName string, batch bool) string {
	if value != autoName {
		return value
	}
	if batch {
		return name + "_" + defaultName
	}
	return defaultName
}
