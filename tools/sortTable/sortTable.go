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

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optInput    := options. StringLong("input",           'i', "",           "input table")
  optOutput   := options. StringLong("output",          'o', "",           "output table")
  optChrom    := options. StringLong("chrom-column",     0 , "chromosome", "name of the chromosome column")
  optPosition := options. StringLong("position-column",  0 , "position",   "name of the position column")
  optHelp     := options.   BoolLong("help",            'h',               "print help")
  optVerbose  := options.CounterLong("verbose",         'v',               "verbose level [-v or -vv]")

  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 || *optInput == "" || *optOutput == "" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  initLogging(Config{Verbose: *optVerbose})
  logrus.Infof("Sorting table `%s' by `%s' and `%s'...", *optInput, *optChrom, *optPosition)
  if err := SortTableFile(*optInput, *optOutput, *optChrom, *optPosition); err != nil {
    logrus.Fatal(err)
  }
  logrus.Debugf("Sorted with columns `%s' (lexicographic) and `%s' (numeric)", *optChrom, *optPosition)
  logrus.Infof("Wrote sorted table to `%s'", *optOutput)
}
