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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import genes from ucsc
 * -------------------------------------------------------------------------- */

// Public UCSC MySQL server.
var UCSCHost = "genome-mysql.cse.ucsc.edu:3306"

// Import transcripts from a UCSC gene table (e.g. knownGene or ncbiRefSeq)
// of the given genome assembly. UCSC start positions are zero-based and are
// converted to one-based coordinates.
func ImportGenesFromUCSC(genome, table string) (Genes, error) {
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand string
  var i_txFrom, i_txTo int

  names    := []string{}
  seqnames := []string{}
  txFrom   := []int{}
  txTo     := []int{}
  strand   := []byte{}

  /* open connection */
  db, err := sql.Open("mysql", fmt.Sprintf("genome@tcp(%s)/%s", UCSCHost, genome))
  if err != nil {
    return Genes{}, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return Genes{}, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return Genes{}, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo); err != nil {
      return Genes{}, err
    }
    names    = append(names,    i_name)
    seqnames = append(seqnames, i_seqname)
    txFrom   = append(txFrom,   i_txFrom+1)
    txTo     = append(txTo,     i_txTo)
    if len(i_strand) > 0 {
      strand = append(strand, i_strand[0])
    } else {
      strand = append(strand, '.')
    }
  }
  if err := rows.Err(); err != nil {
    return Genes{}, err
  }
  return NewGenes(names, seqnames, txFrom, txTo, strand), nil
}
