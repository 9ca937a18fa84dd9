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

import   "testing"

import   "github.com/stretchr/testify/assert"

/* -------------------------------------------------------------------------- */

func TestGenesSlice(t *testing.T) {
  genes := NewGenes(
    []string{"g1", "g2", "g3"},
    []string{"chr1", "chr1", "chr2"},
    []int{10, 200, 5},
    []int{20, 300, 50},
    []byte{'+', '-', '+'})

  s := genes.Slice(1, 3)
  assert.Equal(t, 2, s.Length())
  assert.Equal(t, []string{"g2", "g3"}, s.Names)
  assert.Equal(t, []int{200, 5}, s.From)

  assert.Panics(t, func() {
    NewGenes([]string{"g1"}, []string{}, []int{1}, []int{2}, []byte{'+'})
  })
}
