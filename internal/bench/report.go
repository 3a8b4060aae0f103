package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport prints results as an aligned table. RELATIVE is each
// strategy's time over the fastest strategy on the same case.
func WriteReport(w io.Writer, results []Result) error {
	fastest := make(map[string]int64)
	for _, r := range results {
		if r.Err != nil || r.NsPerOp <= 0 {
			continue
		}
		if best, ok := fastest[r.Case]; !ok || r.NsPerOp < best {
			fastest[r.Case] = r.NsPerOp
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tSTRATEGY\tNS/OP\tB/OP\tALLOCS/OP\tRELATIVE\tRECORDS\tAGREES")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t-\terror: %v\n", r.Case, r.Strategy, r.Err)
			continue
		}
		relative := "-"
		if best := fastest[r.Case]; best > 0 && r.NsPerOp > 0 {
			relative = fmt.Sprintf("%.2fx", float64(r.NsPerOp)/float64(best))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%d\t%s\n",
			r.Case, r.Strategy, r.NsPerOp, r.BytesPerOp, r.AllocsPerOp, relative, r.Records, yesNo(r.Agrees))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
