package scout

import "sort"

// FrequencyRow is one categorical value with its count and percentage of the
// table's denominator.
type FrequencyRow struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"` // 0..100
}

// FrequencyTable counts occurrences of a categorical value against a stated
// denominator. The denominator choice is statistic-specific: total games,
// eligible games, or the size of a conditioning subset.
type FrequencyTable struct {
	Denominator int            `json:"denominator"`
	Rows        []FrequencyRow `json:"rows"`
}

// ConditionalRow pairs a triggering condition with the response distribution
// observed after it.
type ConditionalRow struct {
	Trigger    string         `json:"trigger"`
	SampleSize int            `json:"sampleSize"`
	Responses  FrequencyTable `json:"responses"`
}

// ConditionalTable groups responses by trigger. Triggers with fewer than
// minConditionalSamples observations are suppressed as noise.
type ConditionalTable struct {
	Rows []ConditionalRow `json:"rows"`
}

// minConditionalSamples is the smallest trigger sample size worth reporting;
// singleton observations are dropped.
const minConditionalSamples = 2

// topResponses caps how many ranked responses a conditional row keeps.
const topResponses = 3

// counter accumulates categorical counts before freezing them into a table.
type counter map[string]int

func (c counter) add(value string) { c[value]++ }

// table freezes the counter against the given denominator, ranked by count
// descending then value ascending for stable output. limit <= 0 keeps all rows.
func (c counter) table(denominator, limit int) FrequencyTable {
	t := FrequencyTable{Denominator: denominator}
	for v, n := range c {
		row := FrequencyRow{Value: v, Count: n}
		if denominator > 0 {
			row.Pct = float64(n) / float64(denominator) * 100
		}
		t.Rows = append(t.Rows, row)
	}
	sort.Slice(t.Rows, func(i, j int) bool {
		if t.Rows[i].Count != t.Rows[j].Count {
			return t.Rows[i].Count > t.Rows[j].Count
		}
		return t.Rows[i].Value < t.Rows[j].Value
	})
	if limit > 0 && len(t.Rows) > limit {
		t.Rows = t.Rows[:limit]
	}
	return t
}

// conditional builds a ConditionalTable from trigger → response counters,
// applying the minimum-sample rule and the response cap. Rows are ordered by
// sample size descending then trigger ascending.
func conditional(byTrigger map[string]counter) *ConditionalTable {
	out := &ConditionalTable{}
	for trigger, responses := range byTrigger {
		sample := 0
		for _, n := range responses {
			sample += n
		}
		if sample < minConditionalSamples {
			continue
		}
		out.Rows = append(out.Rows, ConditionalRow{
			Trigger:    trigger,
			SampleSize: sample,
			Responses:  responses.table(sample, topResponses),
		})
	}
	if len(out.Rows) == 0 {
		return nil
	}
	sort.Slice(out.Rows, func(i, j int) bool {
		if out.Rows[i].SampleSize != out.Rows[j].SampleSize {
			return out.Rows[i].SampleSize > out.Rows[j].SampleSize
		}
		return out.Rows[i].Trigger < out.Rows[j].Trigger
	})
	return out
}

// mean returns the arithmetic mean of ints, 0 for an empty slice.
func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// meanF is mean for float64 slices.
func meanF(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
