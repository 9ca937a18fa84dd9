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

func TestNucleotide(t *testing.T) {
  for _, str := range []string{"A", "c", "G", "t"} {
    n, err := ParseNucleotide(str)
    assert.NoError(t, err)
    assert.Equal(t, string(str[0] &^ 0x20), n.String())
  }
  for _, str := range []string{"N", "", "AC"} {
    _, err := ParseNucleotide(str)
    assert.Error(t, err)
  }
}
