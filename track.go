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

import "sort"

/* -------------------------------------------------------------------------- */

type TSequence map[int]float64

type TMapType map[string]TSequence

// A sparse track is a container for data mapped to genomic locations.
// Only populated positions are stored, all other positions carry the
// value zero. The first position in a sequence is numbered 1.
type SparseTrack struct {
  Name string
  Data TMapType
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewSparseTrack(name string) SparseTrack {
  return SparseTrack{name, make(TMapType)}
}

/* -------------------------------------------------------------------------- */

func (track SparseTrack) Clone() SparseTrack {
  data := make(TMapType)

  for name, sequence := range track.Data {
    t := make(TSequence, len(sequence))
    for position, value := range sequence {
      t[position] = value
    }
    data[name] = t
  }
  return SparseTrack{track.Name, data}
}

/* access methods
 * -------------------------------------------------------------------------- */

// Allocate an empty sequence if the track does not already contain
// one with the given name.
func (track SparseTrack) AddSequence(seqname string) TSequence {
  seq, ok := track.Data[seqname]
  if !ok {
    seq = make(TSequence)
    track.Data[seqname] = seq
  }
  return seq
}

// Set the value at a position. A previous value at the same position
// is overwritten.
func (track SparseTrack) Set(seqname string, position int, value float64) {
  track.AddSequence(seqname)[position] = value
}

func (track SparseTrack) At(seqname string, position int) float64 {
  return track.Data[seqname][position]
}

func (track SparseTrack) Has(seqname string, position int) bool {
  _, ok := track.Data[seqname][position]
  return ok
}

// Names of all sequences in lexicographic order.
func (track SparseTrack) Seqnames() []string {
  seqnames := make([]string, 0, len(track.Data))
  for name := range track.Data {
    seqnames = append(seqnames, name)
  }
  sort.Strings(seqnames)
  return seqnames
}

// Populated positions of a sequence in ascending order.
func (track SparseTrack) Positions(seqname string) []int {
  return track.Data[seqname].Positions()
}

func (track SparseTrack) NumPositions() int {
  n := 0
  for _, sequence := range track.Data {
    n += len(sequence)
  }
  return n
}

// All populated values, ordered by sequence name and position.
func (track SparseTrack) Values() []float64 {
  values := make([]float64, 0, track.NumPositions())
  for _, name := range track.Seqnames() {
    sequence := track.Data[name]
    for _, position := range sequence.Positions() {
      values = append(values, sequence[position])
    }
  }
  return values
}

func (sequence TSequence) Positions() []int {
  positions := make([]int, 0, len(sequence))
  for position := range sequence {
    positions = append(positions, position)
  }
  sort.Ints(positions)
  return positions
}

/* map/reduce
 * -------------------------------------------------------------------------- */

func (track SparseTrack) Map(f func(string, int, float64) float64) {
  for name, sequence := range track.Data {
    for position, value := range sequence {
      sequence[position] = f(name, position, value)
    }
  }
}

func (track SparseTrack) Reduce(f func(float64, float64) float64, x0 float64) map[string]float64 {
  result := make(map[string]float64)

  for _, name := range track.Seqnames() {
    sequence := track.Data[name]
    tmp      := x0
    for _, position := range sequence.Positions() {
      tmp = f(tmp, sequence[position])
    }
    result[name] = tmp
  }
  return result
}
