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

import   "math"
import   "math/rand"
import   "runtime"
import   "strings"
import   "testing"
import   "time"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestInformationContent(t *testing.T) {
  probabilities := [][4]float64{
    {0.25, 0.25, 0.25, 0.25},
    {1.0, 0.0, 0.0, 0.0},
    {0.7, 0.1, 0.1, 0.1},
    {0.5, 0.5, 0.0, 0.0},
    // invalid terms do not contribute
    {0.5, 0.5, -0.1, 0.1},
    {math.NaN(), 0.5, 0.5, 0.0} }
  expected := []float64{0.0, 2.0, 0.64, 1.0, 0.67, 1.0}

  for i, p := range probabilities {
    ic, ok := InformationContent(p)
    assert.True(t, ok)
    assert.InDelta(t, expected[i], ic, 1e-12, "test %d", i)
  }
}

func TestInformationContentInvalid(t *testing.T) {
  for _, p := range [][4]float64{
    {math.NaN(), math.NaN(), math.NaN(), math.NaN()},
    {-1, -0.5, -0.25, -2} } {
    _, ok := InformationContent(p)
    assert.False(t, ok)
  }
}

func TestInformationContentBound(t *testing.T) {
  r := rand.New(rand.NewSource(1))
  for i := 0; i < 1000; i++ {
    p := [4]float64{}
    s := 0.0
    for j := range p {
      p[j] = r.Float64()
      s   += p[j]
    }
    for j := range p {
      p[j] /= s
    }
    ic, ok := InformationContent(p)
    require.True(t, ok)
    assert.True(t, ic >= 0.0 && ic <= InformationMax, "information content %f out of range", ic)
  }
}

/* -------------------------------------------------------------------------- */

const testProbabilityTable =
  "gene_model\tchromosome\tposition\treference_nucleotide\tsequence_context\treference_probability\tA_probability\tC_probability\tG_probability\tT_probability\n" +
  "g1\tchr1\t10\tA\tACGTA\t0.7\t0.7\t0.1\t0.1\t0.1\n" +
  "g1\tchr1\t11\tC\tCGTAC\t0.25\t0.25\tNA\t0.25\t0.25\n" +
  "g1\tchr1\t12\tG\tGTACG\t0.5\t0.0\t0.0\t0.5\t0.5\n" +
  "g1\tchr1\t13\tT\tTACGT\t0.1\tabc\t0.3\t0.3\t0.1\n" +
  "g1\tchr1\t14\tC\tACGTC\tNA\t0.25\t0.25\t0.25\t0.25\n"

func TestScoreRecords(t *testing.T) {
  records, err := ReadProbabilityTable(strings.NewReader(testProbabilityTable))
  require.NoError(t, err)
  require.Len(t, records, 5)

  n := 0
  results, err := ScoreRecords(records, 3, func(i int) { n = i })
  require.NoError(t, err)
  assert.Equal(t, 5, n)

  rows, skipped := FilterInformationResults(results)

  require.Len(t, rows, 3)
  require.Len(t, skipped, 2)
  assert.Equal(t, []int64{10, 12, 14}, []int64{rows[0].Position, rows[1].Position, rows[2].Position})
  assert.Equal(t, 0.64, rows[0].InformationContent)
  assert.Equal(t, 0.7,  rows[0].ReferenceProbability)
  assert.Equal(t, 1.0,  rows[1].InformationContent)
  // missing reference probability is taken from the reference nucleotide
  assert.Equal(t, 0.25, rows[2].ReferenceProbability)
  for _, r := range skipped {
    assert.False(t, r.Ok())
  }
}

func TestParseProbabilityRecord(t *testing.T) {
  record := ProbabilityRecord{
    GeneModel: "g1", Chromosome: "chr2", Position: "100", ReferenceNucleotide: "g",
    ReferenceProbability: "0.4", A: "0.1", C: "0.2", G: "0.4", T: "0.3" }

  row, err := ParseProbabilityRecord(record)
  require.NoError(t, err)
  assert.Equal(t, NucleotideG, row.Reference)
  assert.Equal(t, 100, row.Position)
  assert.Equal(t, [4]float64{0.1, 0.2, 0.4, 0.3}, row.Probabilities)

  record.Position = "x"
  _, err = ParseProbabilityRecord(record)
  assert.Error(t, err)

  record.Position = "100"
  record.ReferenceNucleotide  = "N"
  record.ReferenceProbability = ""
  _, err = ParseProbabilityRecord(record)
  assert.Error(t, err)
}

func TestScoreRecordsProgress(t *testing.T) {
  records, err := ReadProbabilityTable(strings.NewReader(testProbabilityTable))
  require.NoError(t, err)

  counts := []int{}
  results, err := ScoreRecords(records, 4, func(i int) { counts = append(counts, i) })
  require.NoError(t, err)

  // every call reports a finished record
  assert.Equal(t, []int{1, 2, 3, 4, 5}, counts)
  assert.Len(t, results, 5)
}

func TestThreadPoolsStopped(t *testing.T) {
  records, err := ReadProbabilityTable(strings.NewReader(testProbabilityTable))
  require.NoError(t, err)

  before := runtime.NumGoroutine()
  for i := 0; i < 20; i++ {
    _, err := ScoreRecords(records, 4, nil)
    require.NoError(t, err)
    _, err  = ScaledTracks(nil, 4)
    require.NoError(t, err)
  }
  // workers exit asynchronously after the pool is stopped
  after := runtime.NumGoroutine()
  for j := 0; j < 100 && after > before+2; j++ {
    time.Sleep(10*time.Millisecond)
    after = runtime.NumGoroutine()
  }
  assert.True(t, after <= before+2, "goroutines before=%d after=%d", before, after)
}
