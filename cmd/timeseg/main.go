package main

import (
	"fmt"
	"os"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/timeseg/annotator"
	"github.com/katalvlaran/timeseg/binseg"
	"github.com/katalvlaran/timeseg/series"
)

func main() {
	app := buildApp()
	err := app.Run(os.Args)
	grip.EmergencyFatal(err)
}

func buildApp() *cli.App {
	app := cli.NewApp()

	app.Name = "timeseg"
	app.Usage = "annotate time series: change points, segments, dense labels"
	app.Version = "0.1.0"

	app.Commands = []cli.Command{
		detect(),
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Value: "info",
			Usage: "Specify lowest visible loglevel as string: 'emergency|alert|critical|error|warning|notice|info|debug'",
		},
	}

	app.Before = func(c *cli.Context) error {
		return errors.WithStack(loggingSetup(app.Name, c.String("level")))
	}

	return app
}

// logging setup is separate to make it unit testable
func loggingSetup(name, logLevel string) error {
	sender := grip.GetSender()
	sender.SetName(name)

	lvl := sender.Level()
	lvl.Threshold = level.FromString(logLevel)
	return errors.WithStack(sender.SetLevel(lvl))
}

func detect() cli.Command {
	return cli.Command{
		Name:  "detect",
		Usage: "find change points in a CSV series with binary segmentation",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "input",
				Usage: "path to a CSV file holding the series",
			},
			cli.StringFlag{
				Name:  "column",
				Value: "y",
				Usage: "name of the value column",
			},
			cli.StringFlag{
				Name:  "index",
				Usage: "name of an integer index column; row ordinals when unset",
			},
			cli.Float64Flag{
				Name:  "threshold",
				Value: 1,
				Usage: "CUSUM threshold; a split below it is rejected",
			},
			cli.StringFlag{
				Name:  "format",
				Value: "points",
				Usage: "output shape: 'points', 'segments', or 'dense'",
			},
		},
		Action: func(c *cli.Context) error {
			input := c.String("input")
			if input == "" {
				return errors.New("an --input CSV file is required")
			}

			opts := series.DefaultCSVOptions()
			opts.ValueColumn = c.String("column")
			opts.IndexColumn = c.String("index")

			x, err := series.LoadCSV(input, opts)
			if err != nil {
				return errors.Wrap(err, "problem loading series")
			}

			summary, err := x.Describe()
			if err != nil {
				return errors.Wrap(err, "problem summarizing series")
			}
			grip.Debug(message.Fields{
				"input":     input,
				"n":         summary.Len,
				"mean":      summary.Mean,
				"std":       summary.Std,
				"min":       summary.Min,
				"max":       summary.Max,
				"threshold": c.Float64("threshold"),
			})

			model, err := annotator.New(binseg.New(c.Float64("threshold")))
			if err != nil {
				return errors.WithStack(err)
			}
			if err = model.Fit(x); err != nil {
				return errors.Wrap(err, "problem fitting detector")
			}

			switch format := c.String("format"); format {
			case "points":
				points, err := model.PredictPoints(x)
				if err != nil {
					return errors.Wrap(err, "problem predicting change points")
				}
				grip.Infoln("detected change points:", len(points))
				for _, p := range points {
					fmt.Println(p)
				}
			case "segments":
				segs, err := model.PredictSegments(x)
				if err != nil {
					return errors.Wrap(err, "problem predicting segments")
				}
				grip.Infoln("detected segments:", len(segs))
				for _, seg := range segs {
					fmt.Printf("%d,%d,%d\n", seg.Label, seg.Start, seg.End)
				}
			case "dense":
				dense, err := model.PredictDense(x)
				if err != nil {
					return errors.Wrap(err, "problem predicting dense labels")
				}
				for _, v := range dense {
					fmt.Println(v)
				}
			default:
				return errors.Errorf("unknown output format '%s'", format)
			}

			return nil
		},
	}
}
