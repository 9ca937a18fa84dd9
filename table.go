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

import "io"
import "strconv"

import "github.com/grailbio/base/tsv"
import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// A ProbabilityRecord is a raw row of the probability table produced by
// the language model. Probabilities are kept as strings so that invalid
// rows can be skipped instead of aborting the import.
type ProbabilityRecord struct {
  GeneModel            string `tsv:"gene_model"`
  Chromosome           string `tsv:"chromosome"`
  Position             string `tsv:"position"`
  ReferenceNucleotide  string `tsv:"reference_nucleotide"`
  SequenceContext      string `tsv:"sequence_context"`
  ReferenceProbability string `tsv:"reference_probability"`
  A                    string `tsv:"A_probability"`
  C                    string `tsv:"C_probability"`
  G                    string `tsv:"G_probability"`
  T                    string `tsv:"T_probability"`
}

// A ScoredRow is a position of the probability table together with its
// information content.
type ScoredRow struct {
  Chromosome           string  `tsv:"chromosome"`
  Position             int64   `tsv:"position"`
  InformationContent   float64 `tsv:"information_content"`
  ReferenceProbability float64 `tsv:"reference_probability"`
  A                    float64 `tsv:"A"`
  C                    float64 `tsv:"C"`
  G                    float64 `tsv:"G"`
  T                    float64 `tsv:"T"`
}

var scoredTableHeader = []string{
  "chromosome", "position", "information_content", "reference_probability", "A", "C", "G", "T" }

func (row ScoredRow) Probability(n Nucleotide) float64 {
  switch n {
  case NucleotideA: return row.A
  case NucleotideC: return row.C
  case NucleotideG: return row.G
  case NucleotideT: return row.T
  default:
    panic("invalid nucleotide")
  }
}

/* -------------------------------------------------------------------------- */

func newTableReader(r io.Reader) *tsv.Reader {
  reader := tsv.NewReader(r)
  reader.HasHeaderRow   = true
  reader.UseHeaderNames = true
  return reader
}

// Read the tab separated probability table. The first line must contain
// the column names.
func ReadProbabilityTable(r io.Reader) ([]ProbabilityRecord, error) {
  reader  := newTableReader(r)
  records := []ProbabilityRecord{}
  for {
    var record ProbabilityRecord
    if err := reader.Read(&record); err != nil {
      if err == io.EOF {
        break
      }
      return nil, errors.Wrapf(err, "reading probability table failed after %d rows", len(records))
    }
    records = append(records, record)
  }
  return records, nil
}

func ImportProbabilityTable(filename string) ([]ProbabilityRecord, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  records, err := ReadProbabilityTable(f)
  if err != nil {
    return nil, errors.Wrapf(err, "importing `%s' failed", filename)
  }
  return records, nil
}

/* -------------------------------------------------------------------------- */

// Read the table of scored rows written by WriteScoredTable.
func ReadScoredTable(r io.Reader) ([]ScoredRow, error) {
  reader := newTableReader(r)
  rows   := []ScoredRow{}
  for {
    var row ScoredRow
    if err := reader.Read(&row); err != nil {
      if err == io.EOF {
        break
      }
      return nil, errors.Wrapf(err, "reading scored table failed after %d rows", len(rows))
    }
    rows = append(rows, row)
  }
  return rows, nil
}

func ImportScoredTable(filename string) ([]ScoredRow, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  rows, err := ReadScoredTable(f)
  if err != nil {
    return nil, errors.Wrapf(err, "importing `%s' failed", filename)
  }
  return rows, nil
}

/* -------------------------------------------------------------------------- */

func WriteScoredTable(w io.Writer, rows []ScoredRow) error {
  writer := tsv.NewWriter(w)
  for _, name := range scoredTableHeader {
    writer.WriteString(name)
  }
  if err := writer.EndLine(); err != nil {
    return err
  }
  for _, row := range rows {
    writer.WriteString(row.Chromosome)
    writer.WriteInt64 (row.Position)
    for _, v := range [6]float64{row.InformationContent, row.ReferenceProbability, row.A, row.C, row.G, row.T} {
      writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
    }
    if err := writer.EndLine(); err != nil {
      return err
    }
  }
  return writer.Flush()
}

func ExportScoredTable(filename string, rows []ScoredRow) error {
  f, err := createFile(filename)
  if err != nil {
    return err
  }
  if err := WriteScoredTable(f, rows); err != nil {
    f.Close()
    return errors.Wrapf(err, "writing `%s' failed", filename)
  }
  return f.Close()
}
