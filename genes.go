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

/* -------------------------------------------------------------------------- */

// Container for gene models. Coordinates are one-based and inclusive.
type Genes struct {
  Names    []string
  Seqnames []string
  From     []int
  To       []int
  Strand   []byte
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGenes(names, seqnames []string, from, to []int, strand []byte) Genes {
  n := len(names)
  if len(seqnames) != n || len(from) != n || len(to) != n || len(strand) != n {
    panic("NewGenes(): invalid arguments")
  }
  return Genes{names, seqnames, from, to, strand}
}

/* -------------------------------------------------------------------------- */

func (genes Genes) Length() int {
  return len(genes.Names)
}

func (genes Genes) Slice(ifrom, ito int) Genes {
  return Genes{
    genes.Names   [ifrom:ito],
    genes.Seqnames[ifrom:ito],
    genes.From    [ifrom:ito],
    genes.To      [ifrom:ito],
    genes.Strand  [ifrom:ito] }
}

func (genes Genes) String() string {
  s := ""
  for i := 0; i < genes.Length(); i++ {
    s += fmt.Sprintf("%14s %10s %10d %10d %c\n", genes.Names[i], genes.Seqnames[i], genes.From[i], genes.To[i], genes.Strand[i])
  }
  return s
}
