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
  GenesPerFile int
  Test         bool
  Windows      GeneWindowConfig
  Verbose      int
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

func importGenes(config Config, filenameGFF, ucscGenome, ucscTable string) Genes {
  var genes Genes
  var err   error
  if filenameGFF != "" {
    logrus.Infof("Reading genes from `%s'...", filenameGFF)
    genes, err = ImportGFFGenes(filenameGFF)
  } else {
    logrus.Infof("Importing genes from UCSC (%s, %s)...", ucscGenome, ucscTable)
    genes, err = ImportGenesFromUCSC(ucscGenome, ucscTable)
  }
  if err != nil {
    logrus.Fatal(err)
  }
  logrus.Infof("Imported %d genes", genes.Length())
  return genes
}

/* -------------------------------------------------------------------------- */

func geneWindows(config Config, dir, filenameGFF, ucscGenome, ucscTable string) {
  genes := importGenes(config, filenameGFF, ucscGenome, ucscTable)
  if config.Test && genes.Length() > 10 {
    genes = genes.Slice(0, 10)
  }
  filenames, err := ExportGeneWindows(dir, genes, config.GenesPerFile, config.Windows)
  if err != nil {
    logrus.Fatal(err)
  }
  for i, filename := range filenames {
    n := genes.Length() - i*config.GenesPerFile
    if n > config.GenesPerFile {
      n = config.GenesPerFile
    }
    logrus.Debugf("Windows of genes %d-%d written to `%s'", i*config.GenesPerFile, i*config.GenesPerFile+n-1, filename)
    fmt.Printf("Wrote %d genes -> %s\n", n, filename)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  config := Config{}

  optGFF          := options. StringLong("gff",            0 , "",   "input GFF file")
  optUCSCGenome   := options. StringLong("ucsc-genome",    0 , "",   "import genes from the UCSC database for this assembly (e.g. hg38)")
  optUCSCTable    := options. StringLong("ucsc-table",     0 , "ncbiRefSeq", "UCSC gene table")
  optOutputDir    := options. StringLong("output-dir",    'o', "",   "output directory for BED files")
  optGenesPerFile := options.    IntLong("genes-per-file", 0 , 200,  "number of genes in each BED file")
  optPadding      := options.    IntLong("padding",        0 , 1000, "padding (bp) added upstream and downstream of each gene")
  optFlank        := options.    IntLong("flank",          0 , 256,  "half width of each window")
  optTest         := options.   BoolLong("test",           0 ,       "use only the first 10 genes")
  optHelp         := options.   BoolLong("help",          'h',       "print help")
  optVerbose      := options.CounterLong("verbose",       'v',       "verbose level [-v or -vv]")

  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 || *optOutputDir == "" || (*optGFF == "") == (*optUCSCGenome == "") {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optGenesPerFile < 1 || *optPadding < 0 || *optFlank < 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.GenesPerFile    = *optGenesPerFile
  config.Test            = *optTest
  config.Windows.Padding = *optPadding
  config.Windows.Flank   = *optFlank
  config.Verbose         = *optVerbose

  initLogging(config)

  geneWindows(config, *optOutputDir, *optGFF, *optUCSCGenome, *optUCSCTable)
}
