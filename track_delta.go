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

// Wiggle output format of delta tracks.
var DeltaWiggleFormat = WiggleFormat{
  Header   : TrackHeader("Delta(IC x P) Alt-Ref", "Signed difference between non-reference and reference IC-weighted scores"),
  Precision: 6,
  Separator: "\t",
}

/* -------------------------------------------------------------------------- */

func unionSeqnames(a, b SparseTrack) []string {
  r := make(map[string]struct{})
  for name := range a.Data {
    r[name] = struct{}{}
  }
  for name := range b.Data {
    r[name] = struct{}{}
  }
  seqnames := make([]string, 0, len(r))
  for name := range r {
    seqnames = append(seqnames, name)
  }
  return seqnames
}

// Compute the signed difference alternate - reference at every position
// populated in either track. Missing positions count as zero and
// positions with a difference of exactly zero are omitted. Every sequence
// of both tracks is present in the result, possibly empty.
func Delta(reference, alternate SparseTrack) SparseTrack {
  result := NewSparseTrack(alternate.Name)

  for _, seqname := range unionSeqnames(reference, alternate) {
    seq1 := reference.Data[seqname]
    seq2 := alternate.Data[seqname]
    r    := result.AddSequence(seqname)
    for position, v2 := range seq2 {
      if d := v2 - seq1[position]; d != 0.0 {
        r[position] = d
      }
    }
    for position, v1 := range seq1 {
      if _, ok := seq2[position]; ok {
        continue
      }
      if d := 0.0 - v1; d != 0.0 {
        r[position] = d
      }
    }
  }
  return result
}
