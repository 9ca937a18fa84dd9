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

import "bufio"
import "io"
import "os"
import "regexp"
import "strings"
import "unicode"

import "github.com/klauspost/compress/gzip"
import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

/* -------------------------------------------------------------------------- */

type readCloser struct {
  io.Reader
  closers []io.Closer
}

func (r readCloser) Close() error {
  var err error
  for i := len(r.closers)-1; i >= 0; i-- {
    if e := r.closers[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

type writeCloser struct {
  *bufio.Writer
  closers []io.Closer
}

func (w writeCloser) Close() error {
  err := w.Flush()
  for i := len(w.closers)-1; i >= 0; i-- {
    if e := w.closers[i].Close(); e != nil && err == nil {
      err = e
    }
  }
  return err
}

/* -------------------------------------------------------------------------- */

func isGzip(r *bufio.Reader) bool {
  b, err := r.Peek(2)
  if err != nil {
    return false
  }
  return b[0] == 31 && b[1] == 139
}

// Open a file for reading. Gzipped files are detected by their magic
// bytes and decompressed on the fly.
func openFile(filename string) (io.ReadCloser, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  b := bufio.NewReader(f)
  if !isGzip(b) {
    return readCloser{b, []io.Closer{f}}, nil
  }
  g, err := gzip.NewReader(b)
  if err != nil {
    f.Close()
    return nil, errors.Wrapf(err, "opening `%s' failed", filename)
  }
  return readCloser{g, []io.Closer{f, g}}, nil
}

// Create a buffered file for writing. The output is gzipped if the
// filename ends with `.gz'.
func createFile(filename string) (io.WriteCloser, error) {
  f, err := os.Create(filename)
  if err != nil {
    return nil, err
  }
  if strings.HasSuffix(filename, ".gz") {
    g := gzip.NewWriter(f)
    return writeCloser{bufio.NewWriter(g), []io.Closer{f, g}}, nil
  }
  return writeCloser{bufio.NewWriter(f), []io.Closer{f}}, nil
}

/* -------------------------------------------------------------------------- */

func fieldsQuoted(line string) []string {
  // if quoted
  q := false
  f := func(r rune) bool {
    if r == '"' {
      q = !q
    }
    return unicode.IsSpace(r) && q == false
  }
  return strings.FieldsFunc(line, f)
}

var quotesRegexp = regexp.MustCompile(`"([^"]*)"`)

func removeQuotes(str string) string {
  if quotesRegexp.MatchString(str) {
    return quotesRegexp.ReplaceAllString(str, "${1}")
  }
  return str
}
