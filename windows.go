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

package ictrack

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "path/filepath"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// A sequence window centered at a single position of a gene. Coordinates
// are zero-based and half-open as in BED files.
type GeneWindow struct {
  Seqname string
  From    int
  To      int
  Name    string
}

type GeneWindowConfig struct {
  // number of positions added upstream and downstream of each gene
  Padding int
  // half width of each window
  Flank   int
}

func DefaultGeneWindowConfig() GeneWindowConfig {
  return GeneWindowConfig{Padding: 1000, Flank: 256}
}

/* -------------------------------------------------------------------------- */

// One window for every position of the padded gene i. Windows that would
// start before the first position of the sequence are dropped.
func (genes Genes) Windows(i int, config GeneWindowConfig) []GeneWindow {
  begin := genes.From[i] - config.Padding
  end   := genes.To  [i] + config.Padding
  r     := make([]GeneWindow, 0, iMax(0, end-begin))
  // zero-based positions
  for pos := iMax(begin-1, config.Flank); pos < end-1; pos++ {
    r = append(r, GeneWindow{genes.Seqnames[i], pos-config.Flank, pos+config.Flank, genes.Names[i]})
  }
  return r
}

func WriteWindowsBed(w io.Writer, windows []GeneWindow) error {
  for _, window := range windows {
    if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", window.Seqname, window.From, window.To, window.Name); err != nil {
      return err
    }
  }
  return nil
}

// Split genes into chunks of genesPerFile genes and write the windows of
// each chunk to <dir>/genes_<k>.bed. Returns the names of all files.
func ExportGeneWindows(dir string, genes Genes, genesPerFile int, config GeneWindowConfig) ([]string, error) {
  if genesPerFile < 1 {
    return nil, fmt.Errorf("ExportGeneWindows(): invalid number of genes per file `%d'", genesPerFile)
  }
  filenames := []string{}
  for k, i := 0, 0; i < genes.Length(); k, i = k+1, i+genesPerFile {
    chunk    := genes.Slice(i, iMin(i+genesPerFile, genes.Length()))
    filename := filepath.Join(dir, fmt.Sprintf("genes_%d.bed", k))
    f, err   := createFile(filename)
    if err != nil {
      return filenames, err
    }
    for j := 0; j < chunk.Length(); j++ {
      if err := WriteWindowsBed(f, chunk.Windows(j, config)); err != nil {
        f.Close()
        return filenames, errors.Wrapf(err, "writing `%s' failed", filename)
      }
    }
    if err := f.Close(); err != nil {
      return filenames, err
    }
    filenames = append(filenames, filename)
  }
  return filenames, nil
}
