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
import   "os"

import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"

import . "github.com/pbenner/ictrack"

/* -------------------------------------------------------------------------- */

type Config struct {
  Threads int
  Verbose int
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

func informationToWig(config Config, filenameIn, prefix string) {
  logrus.Infof("Reading table `%s'...", filenameIn)
  rows, err := ImportScoredTable(filenameIn)
  if err != nil {
    logrus.Fatal(err)
  }
  logrus.Infof("Reading table `%s'... done (%d rows)", filenameIn, len(rows))

  tracks, err := ScaledTracks(rows, config.Threads)
  if err != nil {
    logrus.Fatal(err)
  }
  for _, mode := range ScaleModes {
    filename := ScaledTrackFilename(prefix, mode)
    logrus.Infof("Writing track `%s'...", filename)
    if err := tracks[mode].ExportWiggle(filename, ScaledWiggleFormat); err != nil {
      logrus.Fatal(err)
    }
    logrus.Debugf("Track `%s': %v", filename, tracks[mode].Summary())
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  config := Config{}

  optInput   := options. StringLong("input",   'i', "", "table with information content")
  optPrefix  := options. StringLong("prefix",  'p', "", "prefix of output wiggle files")
  optThreads := options.    IntLong("threads",  0 ,  1, "number of threads [default: 1]")
  optHelp    := options.   BoolLong("help",    'h',     "print help")
  optVerbose := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")

  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 || *optInput == "" || *optPrefix == "" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Threads = *optThreads
  config.Verbose = *optVerbose

  initLogging(config)

  informationToWig(config, *optInput, *optPrefix)
}
