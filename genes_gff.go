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

import "bufio"
import "fmt"
import "io"
import "strconv"
import "strings"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Identifier of a GFF record, i.e. the value of the ID attribute. The
// full attribute column is returned if no ID is present.
func gffGeneModel(attributes string) string {
  for _, attr := range strings.Split(attributes, ";") {
    if strings.HasPrefix(attr, "ID=") {
      return strings.TrimPrefix(attr, "ID=")
    }
  }
  return attributes
}

// Read all records of type `gene' from a GFF3 file. Comment lines
// starting with `#' are skipped, and reading stops at a `##FASTA'
// directive.
func ReadGFFGenes(reader io.Reader) (Genes, error) {
  scanner  := bufio.NewScanner(reader)
  names    := []string{}
  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  strand   := []byte{}

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    // sequences may follow the annotation
    if line == "##FASTA" {
      break
    }
    if len(line) == 0 || line[0] == '#' {
      continue
    }
    fields := strings.Split(line, "\t")
    if len(fields) != 9 {
      return Genes{}, fmt.Errorf("line %d: GFF file must have nine columns", i)
    }
    if fields[2] != "gene" {
      continue
    }
    t1, err := strconv.ParseInt(fields[3], 10, 64)
    if err != nil {
      return Genes{}, errors.Wrapf(err, "line %d: invalid start position", i)
    }
    t2, err := strconv.ParseInt(fields[4], 10, 64)
    if err != nil {
      return Genes{}, errors.Wrapf(err, "line %d: invalid end position", i)
    }
    names    = append(names,    gffGeneModel(fields[8]))
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    if len(fields[6]) > 0 {
      strand = append(strand, fields[6][0])
    } else {
      strand = append(strand, '.')
    }
  }
  if err := scanner.Err(); err != nil {
    return Genes{}, err
  }
  return NewGenes(names, seqnames, from, to, strand), nil
}

func ImportGFFGenes(filename string) (Genes, error) {
  f, err := openFile(filename)
  if err != nil {
    return Genes{}, err
  }
  defer f.Close()

  genes, err := ReadGFFGenes(f)
  if err != nil {
    return genes, errors.Wrapf(err, "reading `%s' failed", filename)
  }
  return genes, nil
}
