package usecase

// quotaStatus captures one quota scope at evaluation time: the configured
// limit and the quantity already consumed against it. A limit of zero means
// the scope is not enforced.
//
// Consumption is the sum of quantities from print records in state authorized
// or executed; denied and failed attempts never count.

type quotaStatus struct {
	limit int
	used  int
}

func (q quotaStatus) enforced() bool {
	return q.limit > 0
}

// atLimit reports whether consumption already reached or passed the limit,
// before considering the incoming request.
func (q quotaStatus) atLimit() bool {
	return q.enforced() && q.used >= q.limit
}

// wouldExceed reports whether granting the requested quantity would push
// consumption past the limit.
func (q quotaStatus) wouldExceed(requested int) bool {
	return q.enforced() && q.used+requested > q.limit
}

// remaining is the allowance still available, floored at zero for display.
func (q quotaStatus) remaining() int {
	if !q.enforced() {
		return 0
	}
	if r := q.limit - q.used; r > 0 {
		return r
	}
	return 0
}
