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
import   "github.com/pbenner/ictrack/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  Progress bool
  Threads  int
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

func probsToInformation(config Config, filenameIn, filenameOut string) {
  logrus.Infof("Reading probability table `%s'...", filenameIn)
  records, err := ImportProbabilityTable(filenameIn)
  if err != nil {
    logrus.Fatal(err)
  }
  logrus.Infof("Reading probability table `%s'... done (%d rows)", filenameIn, len(records))

  var callback func(int)
  if config.Progress {
    callback = progress.New("Scoring", len(records), 1000).Print
  }
  results, err := ScoreRecords(records, config.Threads, callback)
  if err != nil {
    logrus.Fatal(err)
  }
  rows, skipped := FilterInformationResults(results)
  for _, r := range skipped {
    logrus.Debugf("Skipping row: %v", r.Err)
  }

  logrus.Infof("Writing table `%s'...", filenameOut)
  if err := ExportScoredTable(filenameOut, rows); err != nil {
    logrus.Fatal(err)
  }
  fmt.Printf("Information content calculated for %d rows and saved to %s\n", len(rows), filenameOut)
  fmt.Printf("Skipped %d rows due to invalid nucleotide probabilities.\n", len(skipped))
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  config := Config{}

  optInput    := options. StringLong("input",    'i', "",  "input table with nucleotide probabilities")
  optOutput   := options. StringLong("output",   'o', "",  "output table with information content")
  optThreads  := options.    IntLong("threads",   0 ,  1,  "number of threads [default: 1]")
  optProgress := options.   BoolLong("progress",  0 ,      "print progress bar")
  optHelp     := options.   BoolLong("help",     'h',      "print help")
  optVerbose  := options.CounterLong("verbose",  'v',      "verbose level [-v or -vv]")

  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 || *optInput == "" || *optOutput == "" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Progress = *optProgress
  config.Threads  = *optThreads
  config.Verbose  = *optVerbose

  initLogging(config)

  probsToInformation(config, *optInput, *optOutput)
}
