/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "math"
import   "os"
import   "path/filepath"
import   "strings"

import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"
import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/vg"

import . "github.com/pbenner/ictrack"

/* -------------------------------------------------------------------------- */

type Config struct {
  Bins     int
  SavePlot bool
  Verbose  int
}

/* -------------------------------------------------------------------------- */

func initLogging(config Config) {
  logrus.SetOutput(os.Stderr)
  logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
  switch {
  case config.Verbose >= 2:
    logrus.SetLevel(logrus.DebugLevel)
  case config.Verbose == 1:
    logrus.SetLevel(logrus.InfoLevel)
  default:
    logrus.SetLevel(logrus.WarnLevel)
  }
}

/* -------------------------------------------------------------------------- */

func importTrack(config Config, filename string) SparseTrack {
  logrus.Infof("Reading track `%s'...", filename)
  track, err := ImportWiggle(filename)
  if err != nil {
    logrus.Fatal(err)
  }
  logrus.Infof("Reading track `%s'... done (%d positions)", filename, track.NumPositions())
  return track
}

func exportTrack(config Config, track SparseTrack, filename string) {
  logrus.Infof("Writing track `%s'...", filename)
  if err := track.ExportWiggle(filename, DeltaWiggleFormat); err != nil {
    logrus.Fatal(err)
  }
  logrus.Infof("Writing track `%s'... done", filename)
}

/* -------------------------------------------------------------------------- */

func savePlot(config Config, track SparseTrack, filename string) {
  basename := strings.TrimSuffix(filename, filepath.Ext(filename))
  filename  = fmt.Sprintf("%s.histogram.pdf", basename)

  values := plotter.Values{}
  for _, v := range track.Values() {
    if !math.IsNaN(v) && !math.IsInf(v, 0) {
      values = append(values, v)
    }
  }
  if len(values) == 0 {
    logrus.Warnf("Delta track is empty, not writing `%s'", filename)
    return
  }
  p := plot.New()
  p.Title.Text   = track.Name
  p.X.Label.Text = "delta"
  p.Y.Label.Text = "positions"

  h, err := plotter.NewHist(values, config.Bins)
  if err != nil {
    logrus.Fatal(err)
  }
  p.Add(h)

  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    logrus.Fatal(err)
  }
  logrus.Infof("Wrote delta histogram to `%s'", filename)
}

/* -------------------------------------------------------------------------- */

func wigDelta(config Config, filenameReference, filenameAlternate, filenameOutput string) {
  reference := importTrack(config, filenameReference)
  alternate := importTrack(config, filenameAlternate)

  logrus.Info("Computing delta track...")
  delta := Delta(reference, alternate)
  logrus.Infof("Delta track: %v", delta.Summary())

  exportTrack(config, delta, filenameOutput)

  if config.SavePlot {
    savePlot(config, delta, filenameOutput)
  }
  fmt.Println("Done:", filenameOutput)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  config := Config{}

  optBins     := options.    IntLong("bins",      'b', 100, "number of histogram bins")
  optSavePlot := options.   BoolLong("save-plot",  0 ,      "save histogram of delta values")
  optHelp     := options.   BoolLong("help",      'h',      "print help")
  optVerbose  := options.CounterLong("verbose",   'v',      "verbose level [-v or -vv]")

  options.SetParameters("<REFERENCE.wig> <ALTERNATE.wig> <OUTPUT.wig>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Bins     = *optBins
  config.SavePlot = *optSavePlot
  config.Verbose  = *optVerbose

  initLogging(config)

  wigDelta(config, options.Args()[0], options.Args()[1], options.Args()[2])
}
