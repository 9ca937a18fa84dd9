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

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type ScaleMode int

const (
  ScaleA ScaleMode = iota
  ScaleC
  ScaleG
  ScaleT
  ScaleInformation
  ScaleReference
  ScaleNonReference
)

var ScaleModes = []ScaleMode{
  ScaleA, ScaleC, ScaleG, ScaleT, ScaleInformation, ScaleReference, ScaleNonReference }

// Wiggle output format of scaled tracks.
var ScaledWiggleFormat = WiggleFormat{Precision: 4, Separator: " "}

func (mode ScaleMode) String() string {
  switch mode {
  case ScaleA           : return "A_scaled"
  case ScaleC           : return "C_scaled"
  case ScaleG           : return "G_scaled"
  case ScaleT           : return "T_scaled"
  case ScaleInformation : return "information"
  case ScaleReference   : return "reference"
  case ScaleNonReference: return "nonreference"
  default:
    panic("invalid scale mode")
  }
}

// Name of the wiggle file that stores the track of the given mode.
func ScaledTrackFilename(prefix string, mode ScaleMode) string {
  return fmt.Sprintf("%s_%s.wig", prefix, mode)
}

/* -------------------------------------------------------------------------- */

// Scale the information content of a row. Nucleotide modes multiply by
// the probability of the nucleotide, the reference modes by the
// probability of the reference or of any other nucleotide.
func Scale(row ScoredRow, mode ScaleMode) (string, int, float64) {
  ic := row.InformationContent
  switch mode {
  case ScaleA, ScaleC, ScaleG, ScaleT:
    return row.Chromosome, int(row.Position), ic*row.Probability(Nucleotides[mode])
  case ScaleInformation:
    return row.Chromosome, int(row.Position), ic
  case ScaleReference:
    return row.Chromosome, int(row.Position), ic*row.ReferenceProbability
  case ScaleNonReference:
    return row.Chromosome, int(row.Position), ic*(1.0 - row.ReferenceProbability)
  default:
    panic("invalid scale mode")
  }
}

// Construct one track for every scale mode. Rows are scaled in parallel
// and inserted in their original order. Tracks are written sorted by
// position, and a repeated position keeps only the value of its last row.
func ScaledTracks(rows []ScoredRow, threads int) (map[ScaleMode]SparseTrack, error) {
  if threads < 1 {
    threads = 1
  }
  pool   := threadpool.New(threads, 100*threads)
  defer pool.Stop()

  values := make([][]float64, len(ScaleModes))
  for i := range values {
    values[i] = make([]float64, len(rows))
  }
  if err := pool.RangeJob(0, len(rows), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    for j, mode := range ScaleModes {
      _, _, values[j][i] = Scale(rows[i], mode)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  tracks := make(map[ScaleMode]SparseTrack)
  for j, mode := range ScaleModes {
    track := NewSparseTrack(mode.String())
    for i, row := range rows {
      track.Set(row.Chromosome, int(row.Position), values[j][i])
    }
    tracks[mode] = track
  }
  return tracks, nil
}
