package scout

import "testing"

func TestCounterTable_RankingAndPct(t *testing.T) {
	c := make(counter)
	c.add("Ashe")
	c.add("Ashe")
	c.add("Zeri")
	c.add("Kaisa")

	tab := c.table(4, 0)
	if tab.Denominator != 4 || len(tab.Rows) != 3 {
		t.Fatalf("want denominator 4 with 3 rows, got %+v", tab)
	}
	if tab.Rows[0].Value != "Ashe" || tab.Rows[0].Count != 2 || tab.Rows[0].Pct != 50 {
		t.Errorf("top row: want Ashe 2 (50%%), got %+v", tab.Rows[0])
	}
	// Ties break alphabetically for stable output.
	if tab.Rows[1].Value != "Kaisa" || tab.Rows[2].Value != "Zeri" {
		t.Errorf("tied rows must sort by value: got %s, %s", tab.Rows[1].Value, tab.Rows[2].Value)
	}

	for _, row := range tab.Rows {
		if row.Pct < 0 || row.Pct > 100 {
			t.Errorf("%s: pct out of range: %f", row.Value, row.Pct)
		}
	}
}

func TestCounterTable_Limit(t *testing.T) {
	c := counter{"a": 5, "b": 4, "c": 3, "d": 2}
	tab := c.table(14, 2)
	if len(tab.Rows) != 2 || tab.Rows[0].Value != "a" || tab.Rows[1].Value != "b" {
		t.Errorf("limit 2 keeps the top rows: got %+v", tab.Rows)
	}
}

func TestCounterTable_ZeroDenominator(t *testing.T) {
	c := counter{"a": 1}
	tab := c.table(0, 0)
	if tab.Rows[0].Pct != 0 {
		t.Errorf("zero denominator must not divide: got %f", tab.Rows[0].Pct)
	}
}

func TestConditional_MinimumSampleRule(t *testing.T) {
	byTrigger := map[string]counter{
		"Azir":  {"Orianna": 2, "Ahri": 1}, // 3 samples, reported
		"Kalista": {"Ashe": 1},             // singleton, suppressed
	}
	tab := conditional(byTrigger)
	if tab == nil || len(tab.Rows) != 1 {
		t.Fatalf("want exactly the Azir row, got %+v", tab)
	}
	row := tab.Rows[0]
	if row.Trigger != "Azir" || row.SampleSize != 3 {
		t.Errorf("want Azir with 3 samples, got %+v", row)
	}
	if row.Responses.Rows[0].Value != "Orianna" {
		t.Errorf("want Orianna as the top response, got %+v", row.Responses.Rows)
	}
}

func TestConditional_AllSuppressedIsNil(t *testing.T) {
	byTrigger := map[string]counter{"Azir": {"Orianna": 1}}
	if tab := conditional(byTrigger); tab != nil {
		t.Errorf("only singletons: want nil, got %+v", tab)
	}
}

func TestConditional_ResponseCap(t *testing.T) {
	byTrigger := map[string]counter{
		"Azir": {"a": 4, "b": 3, "c": 2, "d": 1},
	}
	tab := conditional(byTrigger)
	if got := len(tab.Rows[0].Responses.Rows); got != topResponses {
		t.Errorf("want %d ranked responses, got %d", topResponses, got)
	}
}

func TestMeans(t *testing.T) {
	if got := mean(nil); got != 0 {
		t.Errorf("mean of empty: want 0, got %f", got)
	}
	if got := mean([]int{2, 4}); got != 3 {
		t.Errorf("want 3, got %f", got)
	}
	if got := meanF([]float64{1.5, 2.5}); got != 2 {
		t.Errorf("want 2, got %f", got)
	}
}
