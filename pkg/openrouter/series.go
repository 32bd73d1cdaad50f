package openrouter

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/Crashthatch/openroutermodeltable/pkg/errors"
)

// The frontend stats endpoints are not a stable API: field names shift
// between series types and deployments. Responses are therefore read with
// gjson rather than rigid struct decoding, and every shape mismatch
// degrades to ErrAbsent so one broken series never fails a run.

// SeriesPoints fetches one comparison series for a model and returns one
// numeric value per time bucket. When multiple providers report for the
// same bucket, the first provider's value wins. Bucket order follows first
// appearance in the response.
func (c *Client) SeriesPoints(ctx context.Context, permaslug string, series Series) ([]float64, error) {
	data, err := c.seriesData(ctx, permaslug, series)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var points []float64
	data.ForEach(func(_, item gjson.Result) bool {
		bucket, value, ok := seriesPoint(item)
		if !ok || seen[bucket] {
			return true
		}
		seen[bucket] = true
		points = append(points, value)
		return true
	})
	return points, nil
}

// UptimeRecent fetches the first provider's recent uptime history. Entries
// with no reported value come back nil and are preserved; the caller
// decides how to treat them.
func (c *Client) UptimeRecent(ctx context.Context, permaslug string) ([]*float64, error) {
	data, err := c.seriesData(ctx, permaslug, SeriesUptime)
	if err != nil {
		return nil, err
	}

	first := data.Get("0")
	if !first.Exists() {
		return nil, errors.ErrAbsent
	}

	history := first.Get("history")
	if !history.Exists() {
		history = first.Get("uptime")
	}
	if !history.IsArray() {
		return nil, errors.ErrAbsent
	}

	var entries []*float64
	history.ForEach(func(_, item gjson.Result) bool {
		value := item
		if item.IsObject() {
			value = item.Get("uptime")
		}
		if value.Type == gjson.Null || !value.Exists() {
			entries = append(entries, nil)
		} else {
			v := value.Float()
			entries = append(entries, &v)
		}
		return true
	})
	return entries, nil
}

// EndpointStats fetches per-endpoint stats for a model variant and returns
// a snapshot of the first reported endpoint, which the API ranks best.
// An empty endpoint list yields a nil snapshot without error.
func (c *Client) EndpointStats(ctx context.Context, permaslug, variant string) (*ProviderSnapshot, error) {
	if variant == "" {
		variant = DefaultVariant
	}
	u := c.frontendURL + "/stats/endpoint?permaslug=" + url.QueryEscape(permaslug) +
		"&variant=" + url.QueryEscape(variant)

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.NewParseError("json", u, "response is not valid JSON", errors.ErrAbsent)
	}

	first := gjson.GetBytes(body, "data.0")
	if !first.Exists() {
		return nil, nil
	}

	snapshot := &ProviderSnapshot{
		P50Throughput: nullableFloat(statField(first, "p50_throughput")),
		P50Latency:    nullableFloat(statField(first, "p50_latency")),
		RequestCount:  nullableInt(statField(first, "request_count")),
	}
	return snapshot, nil
}

// seriesData fetches a stats series and returns its "data" field.
func (c *Client) seriesData(ctx context.Context, permaslug string, series Series) (gjson.Result, error) {
	u := c.frontendURL + "/stats/" + string(series) + "?permaslug=" + url.QueryEscape(permaslug)

	body, err := c.get(ctx, u)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errors.NewParseError("json", u, "response is not valid JSON", errors.ErrAbsent)
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return gjson.Result{}, errors.ErrAbsent
	}
	return data, nil
}

// seriesPoint extracts the time bucket and numeric value from one series
// entry, tolerating the field-name variants the frontend API uses.
func seriesPoint(item gjson.Result) (bucket string, value float64, ok bool) {
	ts := item.Get("date")
	if !ts.Exists() {
		ts = item.Get("x")
	}
	v := item.Get("y")
	if !v.Exists() {
		v = item.Get("value")
	}
	if !ts.Exists() || !v.Exists() || v.Type == gjson.Null {
		return "", 0, false
	}
	return ts.String(), v.Float(), true
}

// statField reads a stats field from an endpoint entry, looking both under
// a nested "stats" object and at the top level.
func statField(entry gjson.Result, name string) gjson.Result {
	if v := entry.Get("stats." + name); v.Exists() {
		return v
	}
	return entry.Get(name)
}

func nullableFloat(v gjson.Result) *float64 {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	f := v.Float()
	return &f
}

func nullableInt(v gjson.Result) *int64 {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	i := v.Int()
	return &i
}
