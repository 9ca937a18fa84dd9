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
import "fmt"
import "io"
import "strconv"
import "strings"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// A FormatError reports a malformed line of a wiggle file.
type FormatError struct {
  Line int
  Text string
  Err  error
}

func (e *FormatError) Error() string {
  return fmt.Sprintf("invalid wiggle line %d `%s': %v", e.Line, e.Text, e.Err)
}

/* -------------------------------------------------------------------------- */

type wiggleMode int

const (
  wiggleNone wiggleMode = iota
  wiggleVariableStep
  wiggleFixedStep
)

// State of the wiggle parser between two lines. The state is replaced
// by every step declaration.
type wiggleParser struct {
  mode    wiggleMode
  seqname string
  start   int
  step    int
  span    int
  index   int
}

func parseWiggleAttributes(fields []string) (map[string]string, error) {
  attributes := make(map[string]string)
  for _, field := range fields {
    kv := strings.SplitN(field, "=", 2)
    if len(kv) != 2 {
      return nil, fmt.Errorf("attribute `%s' is not of the form key=value", field)
    }
    attributes[kv[0]] = removeQuotes(kv[1])
  }
  return attributes, nil
}

func parseWiggleInt(attributes map[string]string, key string, def int) (int, error) {
  str, ok := attributes[key]
  if !ok {
    return def, nil
  }
  t, err := strconv.ParseInt(str, 10, 64)
  if err != nil {
    return 0, fmt.Errorf("invalid value for attribute `%s': %v", key, err)
  }
  return int(t), nil
}

func (p wiggleParser) declaration(mode wiggleMode, fields []string) (wiggleParser, error) {
  attributes, err := parseWiggleAttributes(fields[1:])
  if err != nil {
    return p, err
  }
  r := wiggleParser{mode: mode}
  if r.seqname = attributes["chrom"]; r.seqname == "" {
    return p, fmt.Errorf("declaration line is missing the chromosome name")
  }
  if r.span, err = parseWiggleInt(attributes, "span", 1); err != nil {
    return p, err
  }
  if mode == wiggleFixedStep {
    if _, ok := attributes["start"]; !ok {
      return p, fmt.Errorf("declaration line is missing the start position")
    }
    if r.start, err = parseWiggleInt(attributes, "start", 0); err != nil {
      return p, err
    }
    if r.step, err = parseWiggleInt(attributes, "step", 1); err != nil {
      return p, err
    }
  }
  return r, nil
}

func (p wiggleParser) data(fields []string, track SparseTrack) (wiggleParser, error) {
  switch p.mode {
  case wiggleFixedStep:
    if len(fields) != 1 {
      return p, fmt.Errorf("fixedStep data line must contain a single value")
    }
    value, err := strconv.ParseFloat(fields[0], 64)
    if err != nil {
      return p, err
    }
    track.Set(p.seqname, p.start + p.index*p.step, value)
    p.index++
  case wiggleVariableStep:
    if len(fields) != 2 {
      return p, fmt.Errorf("variableStep data line must contain a position and a value")
    }
    position, err := strconv.ParseInt(fields[0], 10, 64)
    if err != nil {
      return p, err
    }
    value, err := strconv.ParseFloat(fields[1], 64)
    if err != nil {
      return p, err
    }
    // only the anchor position is recorded, span is not expanded
    track.Set(p.seqname, int(position), value)
  default:
    // no step declaration seen so far, drop the line
  }
  return p, nil
}

// Process a single line and return the new parser state.
func (p wiggleParser) fold(line string, track *SparseTrack) (wiggleParser, error) {
  fields := fieldsQuoted(line)
  if len(fields) == 0 {
    return p, nil
  }
  switch fields[0] {
  case "track":
    if attributes, err := parseWiggleAttributes(fields[1:]); err == nil {
      if name, ok := attributes["name"]; ok {
        track.Name = name
      }
    }
    return p, nil
  case "browser":
    return p, nil
  case "variableStep":
    return p.declaration(wiggleVariableStep, fields)
  case "fixedStep":
    return p.declaration(wiggleFixedStep, fields)
  }
  if strings.HasPrefix(fields[0], "#") {
    return p, nil
  }
  return p.data(strings.Fields(line), *track)
}

/* -------------------------------------------------------------------------- */

// Import a track from a wiggle file with variableStep or fixedStep
// sections. Data lines that precede the first step declaration are
// dropped.
func ReadWiggle(reader io.Reader) (SparseTrack, error) {
  track   := NewSparseTrack("")
  parser  := wiggleParser{}
  scanner := bufio.NewScanner(reader)

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if p, err := parser.fold(line, &track); err != nil {
      return track, &FormatError{i, line, err}
    } else {
      parser = p
    }
  }
  return track, scanner.Err()
}

func ImportWiggle(filename string) (SparseTrack, error) {
  f, err := openFile(filename)
  if err != nil {
    return SparseTrack{}, err
  }
  defer f.Close()

  track, err := ReadWiggle(f)
  if err != nil {
    return track, errors.Wrapf(err, "reading `%s' failed", filename)
  }
  return track, nil
}

/* -------------------------------------------------------------------------- */

// Output options for wiggle files. Tracks are always written in
// variableStep format with span one.
type WiggleFormat struct {
  // optional track definition line
  Header    string
  // number of decimal places
  Precision int
  // separator between position and value
  Separator string
}

// Wiggle track definition line.
func TrackHeader(name, description string) string {
  return fmt.Sprintf("track type=wiggle_0 name=\"%s\" description=\"%s\"", name, description)
}

func (track SparseTrack) writeWiggle_variableStep(w io.Writer, seqname string, format WiggleFormat) error {
  if _, err := fmt.Fprintf(w, "variableStep chrom=%s span=1\n", seqname); err != nil {
    return err
  }
  sequence := track.Data[seqname]
  for _, position := range sequence.Positions() {
    if _, err := fmt.Fprintf(w, "%d%s%.*f\n", position, format.Separator, format.Precision, sequence[position]); err != nil {
      return err
    }
  }
  return nil
}

// Export the track to wiggle format. Sequences are written in
// lexicographic order and positions in ascending order.
func (track SparseTrack) WriteWiggle(w io.Writer, format WiggleFormat) error {
  if format.Separator == "" {
    format.Separator = " "
  }
  if format.Header != "" {
    if _, err := fmt.Fprintln(w, format.Header); err != nil {
      return err
    }
  }
  for _, seqname := range track.Seqnames() {
    if err := track.writeWiggle_variableStep(w, seqname, format); err != nil {
      return err
    }
  }
  return nil
}

func (track SparseTrack) ExportWiggle(filename string, format WiggleFormat) error {
  f, err := createFile(filename)
  if err != nil {
    return err
  }
  if err := track.WriteWiggle(f, format); err != nil {
    f.Close()
    return errors.Wrapf(err, "writing `%s' failed", filename)
  }
  return f.Close()
}
