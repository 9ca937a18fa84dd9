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
import "math"
import "sort"

import "gonum.org/v1/gonum/floats"
import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

type TrackSummary struct {
  N        int
  Mean     float64
  SD       float64
  Min      float64
  Max      float64
  Median   float64
  Positive int
  Negative int
}

func (s TrackSummary) String() string {
  return fmt.Sprintf("n=%d mean=%f sd=%f min=%f median=%f max=%f positive=%d negative=%d",
    s.N, s.Mean, s.SD, s.Min, s.Median, s.Max, s.Positive, s.Negative)
}

/* -------------------------------------------------------------------------- */

// Summary statistics over all populated, finite positions of the track.
func (track SparseTrack) Summary() TrackSummary {
  values := track.finiteValues()
  r := TrackSummary{N: len(values)}
  if r.N == 0 {
    return r
  }
  sort.Float64s(values)

  r.Mean, r.SD = stat.MeanStdDev(values, nil)
  r.Min    = floats.Min(values)
  r.Max    = floats.Max(values)
  r.Median = stat.Quantile(0.5, stat.Empirical, values, nil)
  if r.N == 1 {
    r.SD = 0.0
  }
  for _, v := range values {
    if v > 0 {
      r.Positive++
    }
    if v < 0 {
      r.Negative++
    }
  }
  return r
}

func (track SparseTrack) finiteValues() []float64 {
  values := track.Values()
  r := values[:0]
  for _, v := range values {
    if !math.IsNaN(v) && !math.IsInf(v, 0) {
      r = append(r, v)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

type TrackHistogram struct {
  X []float64
  Y []float64
}

// Histogram of all populated, finite values with n equally sized bins
// between the smallest and largest value. X contains the lower bin
// boundaries.
func (track SparseTrack) Histogram(n int) (TrackHistogram, error) {
  if n < 1 {
    return TrackHistogram{}, fmt.Errorf("Histogram(): invalid number of bins `%d'", n)
  }
  values := track.finiteValues()
  if len(values) == 0 {
    return TrackHistogram{}, fmt.Errorf("Histogram(): track has no finite values")
  }
  min := floats.Min(values)
  max := floats.Max(values)
  if min == max {
    max = min + 1.0
  }
  dividers := make([]float64, n+1)
  floats.Span(dividers, min, max)
  // make sure that the largest value falls into the last bin
  dividers[n] = math.Nextafter(max, math.Inf(1))

  sort.Float64s(values)
  r := TrackHistogram{}
  r.X = dividers[:n]
  r.Y = stat.Histogram(nil, dividers, values, nil)
  return r, nil
}
