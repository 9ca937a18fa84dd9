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

import "io"

import "github.com/go-gota/gota/dataframe"
import "github.com/go-gota/gota/series"
import "github.com/grailbio/base/tsv"
import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Sort a tab separated table with header by a chromosome column
// (lexicographic) and a position column (numeric). All other columns are
// copied unchanged.
func SortTable(r io.Reader, w io.Writer, chromColumn, positionColumn string) error {
  df := dataframe.ReadCSV(r,
    dataframe.WithDelimiter('\t'),
    dataframe.HasHeader(true),
    dataframe.DetectTypes(false),
    dataframe.DefaultType(series.String),
    dataframe.WithTypes(map[string]series.Type{
      chromColumn   : series.String,
      positionColumn: series.Int }))
  if df.Err != nil {
    return errors.Wrap(df.Err, "reading table failed")
  }
  df = df.Arrange(
    dataframe.Sort(chromColumn),
    dataframe.Sort(positionColumn))
  if df.Err != nil {
    return errors.Wrap(df.Err, "sorting table failed")
  }
  writer := tsv.NewWriter(w)
  for _, record := range df.Records() {
    for _, field := range record {
      writer.WriteString(field)
    }
    if err := writer.EndLine(); err != nil {
      return err
    }
  }
  return writer.Flush()
}

func SortTableFile(filenameIn, filenameOut, chromColumn, positionColumn string) error {
  r, err := openFile(filenameIn)
  if err != nil {
    return err
  }
  defer r.Close()

  w, err := createFile(filenameOut)
  if err != nil {
    return err
  }
  if err := SortTable(r, w, chromColumn, positionColumn); err != nil {
    w.Close()
    return errors.Wrapf(err, "sorting `%s' failed", filenameIn)
  }
  return w.Close()
}
