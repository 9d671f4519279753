package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvmath/scalar"
)

// Report summarizes a run. Results keep the order of the scenario file.
type Report struct {
	RunID     string  `json:"run_id"`
	Tolerance float64 `json:"tolerance"`
	Total     int     `json:"total"`
	Passed    int     `json:"passed"`
	Failed    int     `json:"failed"`
	// Fingerprint hashes every outcome but not the run ID, so two runs over
	// the same file agree exactly when their outcomes do.
	Fingerprint string   `json:"fingerprint"`
	Results     []Result `json:"results"`
}

func newReport(id uuid.UUID, tol float64, results []Result) *Report {
	r := &Report{
		RunID:       id.String(),
		Tolerance:   tol,
		Total:       len(results),
		Fingerprint: fmt.Sprintf("%016x", fingerprint(results)),
		Results:     results,
	}
	for _, res := range results {
		if res.Pass {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	return r
}

// OK reports whether every scenario passed.
func (r *Report) OK() bool { return r.Failed == 0 }

// WriteJSON writes the indented report followed by a newline.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func fingerprint(results []Result) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 256)
	for _, r := range results {
		buf = buf[:0]
		buf = append(buf, r.Name...)
		buf = append(buf, 0)
		buf = append(buf, r.Kind...)
		buf = append(buf, 0, flag(r.Pass), flag(r.Hit))
		if r.Classification != nil {
			buf = append(buf, byte(*r.Classification))
		}
		if r.Raw != nil {
			buf = scalar.AppendLE(buf, *r.Raw)
		}
		buf = scalar.AppendAll(buf, r.Point...)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
