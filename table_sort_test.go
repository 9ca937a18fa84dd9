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

func TestSortTable(t *testing.T) {
  input := "chromosome\tposition\tvalue\n" +
    "chr2\t10\ta\n" +
    "chr10\t5\tb\n" +
    "chr2\t9\tc\n" +
    "chr1\t100\td\n"

  var buffer bytes.Buffer
  require.NoError(t, SortTable(strings.NewReader(input), &buffer, "chromosome", "position"))

  assert.Equal(t, "chromosome\tposition\tvalue\n" +
    "chr1\t100\td\n" +
    "chr10\t5\tb\n" +
    "chr2\t9\tc\n" +
    "chr2\t10\ta\n", buffer.String())
}

func TestSortTableMissingColumn(t *testing.T) {
  input := "chr\tstart\n" +
    "chr2\t10\n"

  var buffer bytes.Buffer
  assert.Error(t, SortTable(strings.NewReader(input), &buffer, "chromosome", "position"))
}
