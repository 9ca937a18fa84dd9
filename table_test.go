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

import   "bytes"
import   "path/filepath"
import   "strings"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestScoredTable(t *testing.T) {
  rows1 := []ScoredRow{
    {"chr1", 10, 0.64, 0.7,  0.7, 0.1, 0.1, 0.1},
    {"chr1", 12, 1.0,  0.5,  0.0, 0.0, 0.5, 0.5},
    {"chr2",  3, 0.0,  0.25, 0.25, 0.25, 0.25, 0.25} }

  var buffer bytes.Buffer
  require.NoError(t, WriteScoredTable(&buffer, rows1))

  lines := strings.Split(buffer.String(), "\n")
  assert.Equal(t, "chromosome\tposition\tinformation_content\treference_probability\tA\tC\tG\tT", lines[0])
  assert.Equal(t, "chr1\t10\t0.64\t0.7\t0.7\t0.1\t0.1\t0.1", lines[1])

  rows2, err := ReadScoredTable(&buffer)
  require.NoError(t, err)
  assert.Equal(t, rows1, rows2)
}

func TestScoredTableFile(t *testing.T) {
  rows1 := []ScoredRow{{"chr1", 10, 0.64, 0.7, 0.7, 0.1, 0.1, 0.1}}

  filename := filepath.Join(t.TempDir(), "scored.tsv.gz")
  require.NoError(t, ExportScoredTable(filename, rows1))

  rows2, err := ImportScoredTable(filename)
  require.NoError(t, err)
  assert.Equal(t, rows1, rows2)
}

func TestProbabilityTable(t *testing.T) {
  records, err := ReadProbabilityTable(strings.NewReader(testProbabilityTable))
  require.NoError(t, err)

  assert.Equal(t, ProbabilityRecord{
    GeneModel           : "g1",
    Chromosome          : "chr1",
    Position            : "13",
    ReferenceNucleotide : "T",
    SequenceContext     : "TACGT",
    ReferenceProbability: "0.1",
    A: "abc", C: "0.3", G: "0.3", T: "0.1" }, records[3])
}
