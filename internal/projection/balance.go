package projection

// balanceSeries computes one running-balance series from monthly flows.
// flows[i] is the flow for month i+1; usage[i] is that month's usage
// rate, re-read for every month.
//
// Month 1 holds its own flow. Month 2 decays month 1's flow by the usage
// rate and adds its own. From month 3 on, the prior balance net of the
// first month's flow decays, then the month's flow lands on top. A plain
// left-to-right scan; no recursion.
func balanceSeries(flows, usage []float64) []float64 {
	out := make([]float64, len(flows))
	for i := range flows {
		switch i {
		case 0:
			out[0] = flows[0]
		case 1:
			out[1] = flows[0]*usage[1] + flows[1]
		default:
			out[i] = (out[i-1]-flows[0])*usage[i] + flows[i]
		}
	}
	return out
}
