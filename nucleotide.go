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

type Nucleotide byte

const (
  NucleotideA Nucleotide = iota
  NucleotideC
  NucleotideG
  NucleotideT
)

var Nucleotides = [4]Nucleotide{NucleotideA, NucleotideC, NucleotideG, NucleotideT}

/* -------------------------------------------------------------------------- */

// Code of a nucleotide letter, case insensitive.
func ParseNucleotide(str string) (Nucleotide, error) {
  if len(str) != 1 {
    return 0xFF, fmt.Errorf("ParseNucleotide(): `%s' is not a nucleotide", str)
  }
  switch str[0] {
  case 'A': fallthrough
  case 'a': return NucleotideA, nil
  case 'C': fallthrough
  case 'c': return NucleotideC, nil
  case 'G': fallthrough
  case 'g': return NucleotideG, nil
  case 'T': fallthrough
  case 't': return NucleotideT, nil
  default:  return 0xFF, fmt.Errorf("ParseNucleotide(): `%s' is not a nucleotide", str)
  }
}

func (n Nucleotide) String() string {
  switch n {
  case NucleotideA: return "A"
  case NucleotideC: return "C"
  case NucleotideG: return "G"
  case NucleotideT: return "T"
  default:          return "N"
  }
}
