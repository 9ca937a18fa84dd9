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
import   "strings"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func newTestTrack(values map[string]map[int]float64) SparseTrack {
  track := NewSparseTrack("")
  for seqname, sequence := range values {
    track.AddSequence(seqname)
    for position, value := range sequence {
      track.Set(seqname, position, value)
    }
  }
  return track
}

/* -------------------------------------------------------------------------- */

func TestDelta1(t *testing.T) {
  reference := newTestTrack(map[string]map[int]float64{"chr1": {10: 1.0, 20: 2.0}})
  alternate := newTestTrack(map[string]map[int]float64{"chr1": {10: 1.0, 15: 3.0}})

  delta := Delta(reference, alternate)

  assert.Equal(t, TMapType{"chr1": {15: 3.0, 20: -2.0}}, delta.Data)
}

func TestDeltaIdentity(t *testing.T) {
  track := newTestTrack(map[string]map[int]float64{
    "chr1": {1: 0.5, 2: -0.25, 3: 0.0},
    "chr2": {100: 7.0} })

  delta := Delta(track, track)

  assert.Equal(t, 0, delta.NumPositions())
  assert.Equal(t, []string{"chr1", "chr2"}, delta.Seqnames())
}

func TestDeltaAntisymmetry(t *testing.T) {
  a := newTestTrack(map[string]map[int]float64{
    "chr1": {1: 0.5, 2: 1.0, 5: 3.0},
    "chr3": {7: 1.0} })
  b := newTestTrack(map[string]map[int]float64{
    "chr1": {2: 1.0, 3: -1.0, 5: 1.0},
    "chr2": {9: 2.0} })

  ab := Delta(a, b)
  ba := Delta(b, a)

  assert.Equal(t, ab.Seqnames(), ba.Seqnames())
  for _, seqname := range ab.Seqnames() {
    assert.Equal(t, ab.Positions(seqname), ba.Positions(seqname))
    for _, position := range ab.Positions(seqname) {
      assert.Equal(t, -ab.At(seqname, position), ba.At(seqname, position))
    }
  }
  assert.Equal(t, TMapType{
    "chr1": {1: -0.5, 3: -1.0, 5: -2.0},
    "chr2": {9: 2.0},
    "chr3": {7: -1.0} }, ab.Data)
}

func TestDeltaInputsUnchanged(t *testing.T) {
  reference := newTestTrack(map[string]map[int]float64{"chr1": {10: 1.0}})
  alternate := newTestTrack(map[string]map[int]float64{"chr2": {10: 1.0}})
  r := reference.Clone()
  a := alternate.Clone()

  Delta(reference, alternate)

  assert.Equal(t, r.Data, reference.Data)
  assert.Equal(t, a.Data, alternate.Data)
}

func TestDeltaWiggle(t *testing.T) {
  reference, err := ReadWiggle(strings.NewReader(
    "variableStep chrom=chr1 span=1\n10\t1.0\n20\t2.0\n" +
    "variableStep chrom=chr2 span=1\n5\t1.0\n"))
  require.NoError(t, err)
  alternate, err := ReadWiggle(strings.NewReader(
    "fixedStep chrom=chr1 start=10 step=5\n1.0\n3.0\n" +
    "variableStep chrom=chr2 span=1\n5\t1.0\n"))
  require.NoError(t, err)

  var buffer bytes.Buffer
  require.NoError(t, Delta(reference, alternate).WriteWiggle(&buffer, DeltaWiggleFormat))

  lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
  require.Len(t, lines, 5)
  assert.True(t, strings.HasPrefix(lines[0], "track type=wiggle_0"))
  assert.Equal(t, []string{
    "variableStep chrom=chr1 span=1",
    "15\t3.000000",
    "20\t-2.000000",
    // chromosome without any non-zero difference
    "variableStep chrom=chr2 span=1" }, lines[1:])
  for _, line := range lines {
    assert.False(t, strings.HasSuffix(line, "\t0.000000"))
  }
}
