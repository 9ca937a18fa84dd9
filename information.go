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
import "math"
import "strconv"
import "sync"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Pseudocount added to probabilities before taking the logarithm.
const InformationEpsilon = 1e-9

// Maximal information content of a distribution over four letters.
const InformationMax = 2.0

/* -------------------------------------------------------------------------- */

// Information content 2 + sum_i p_i log2(p_i + eps) of a distribution over
// A, C, G, and T, rounded to two decimal places. Terms that are not finite
// do not contribute to the sum. The second return value is false if no
// term is finite.
func InformationContent(p [4]float64) (float64, bool) {
  s := 0.0
  n := 0
  for _, pi := range p {
    t := pi*math.Log2(pi + InformationEpsilon)
    if math.IsNaN(t) || math.IsInf(t, 0) {
      continue
    }
    s += t
    n++
  }
  if n == 0 {
    return math.NaN(), false
  }
  return roundDecimals(InformationMax + s, 2), true
}

// Round to the given number of decimal places, ties are resolved on the
// exact binary value.
func roundDecimals(x float64, n int) float64 {
  r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', n, 64), 64)
  if err != nil {
    return x
  }
  return r
}

/* -------------------------------------------------------------------------- */

// A ProbabilityRow is a single position of the probability table with all
// values parsed.
type ProbabilityRow struct {
  GeneModel            string
  Chromosome           string
  Position             int
  Reference            Nucleotide
  ReferenceProbability float64
  Probabilities        [4]float64
}

// Either a scored row or the reason why the row was rejected.
type InformationResult struct {
  Row ScoredRow
  Err error
}

func (r InformationResult) Ok() bool {
  return r.Err == nil
}

/* -------------------------------------------------------------------------- */

func parseProbability(name, str string) (float64, error) {
  v, err := strconv.ParseFloat(str, 64)
  if err != nil {
    return 0, fmt.Errorf("invalid %s `%s'", name, str)
  }
  return v, nil
}

// Convert a raw record of the probability table. Fails if a probability
// or the position cannot be parsed. A missing reference probability is
// taken from the probability of the reference nucleotide.
func ParseProbabilityRecord(record ProbabilityRecord) (ProbabilityRow, error) {
  row := ProbabilityRow{GeneModel: record.GeneModel, Chromosome: record.Chromosome}
  if t, err := strconv.ParseInt(record.Position, 10, 64); err != nil {
    return row, fmt.Errorf("invalid position `%s'", record.Position)
  } else {
    row.Position = int(t)
  }
  for i, str := range [4]string{record.A, record.C, record.G, record.T} {
    if v, err := parseProbability(Nucleotides[i].String()+" probability", str); err != nil {
      return row, err
    } else {
      row.Probabilities[i] = v
    }
  }
  reference, errRef := ParseNucleotide(record.ReferenceNucleotide)
  row.Reference = reference
  if v, err := parseProbability("reference probability", record.ReferenceProbability); err == nil {
    row.ReferenceProbability = v
  } else if errRef == nil {
    row.ReferenceProbability = row.Probabilities[reference]
  } else {
    return row, err
  }
  return row, nil
}

// Compute the information content of a probability row.
func (row ProbabilityRow) Score() InformationResult {
  ic, ok := InformationContent(row.Probabilities)
  if !ok {
    return InformationResult{Err: fmt.Errorf("no valid probability at %s:%d", row.Chromosome, row.Position)}
  }
  return InformationResult{Row: ScoredRow{
    Chromosome          : row.Chromosome,
    Position            : int64(row.Position),
    InformationContent  : ic,
    ReferenceProbability: row.ReferenceProbability,
    A                   : row.Probabilities[NucleotideA],
    C                   : row.Probabilities[NucleotideC],
    G                   : row.Probabilities[NucleotideG],
    T                   : row.Probabilities[NucleotideT],
  }}
}

func ScoreRecord(record ProbabilityRecord) InformationResult {
  row, err := ParseProbabilityRecord(record)
  if err != nil {
    return InformationResult{Err: fmt.Errorf("%s:%s: %v", record.Chromosome, record.Position, err)}
  }
  return row.Score()
}

/* -------------------------------------------------------------------------- */

// Keep valid results in their original order and collect rejected ones.
func FilterInformationResults(results []InformationResult) ([]ScoredRow, []InformationResult) {
  rows    := make([]ScoredRow, 0, len(results))
  skipped := []InformationResult{}
  for _, r := range results {
    if r.Ok() {
      rows = append(rows, r.Row)
    } else {
      skipped = append(skipped, r)
    }
  }
  return rows, skipped
}

// Compute the information content of all records using the given number
// of threads. The optional callback receives the number of scored records
// and is never called concurrently.
func ScoreRecords(records []ProbabilityRecord, threads int, callback func(int)) ([]InformationResult, error) {
  if threads < 1 {
    threads = 1
  }
  pool    := threadpool.New(threads, 100*threads)
  defer pool.Stop()

  results := make([]InformationResult, len(records))
  g       := pool.NewJobGroup()
  mtx     := sync.Mutex{}
  done    := 0

  for i := 0; i < len(records); i++ {
    // make a thread safe copy of i
    j := i
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      results[j] = ScoreRecord(records[j])
      if callback != nil {
        mtx.Lock()
        done++
        callback(done)
        mtx.Unlock()
      }
      return nil
    })
  }
  if err := pool.Wait(g); err != nil {
    return nil, err
  }
  return results, nil
}
