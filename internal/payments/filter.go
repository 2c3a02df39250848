package payments

import "strings"

// Criteria selects payments; the zero value selects all of them.
type Criteria struct {
	Status Status `json:"status"`
	Search string `json:"q"`
}

// ParseCriteria reads raw form values. Blank or "all" status is no constraint.
func ParseCriteria(status, search string) (Criteria, error) {
	c := Criteria{Search: search}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "all", "todos":
		return c, nil
	}
	st, err := ParseStatus(status)
	if err != nil {
		return Criteria{}, err
	}
	c.Status = st
	return c, nil
}

func (c Criteria) Matches(p Payment) bool {
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Student), q) && !strings.Contains(strings.ToLower(p.Guardian), q) {
			return false
		}
	}
	return true
}

// Filter keeps the payments satisfying c in their original order.
func Filter(all []Payment, c Criteria) []Payment {
	out := make([]Payment, 0, len(all))
	for _, p := range all {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Summary is the payments card of the dashboard.
type Summary struct {
	Count        int   `json:"count"`
	Paid         int   `json:"paid"`
	Pending      int   `json:"pending"`
	PaidCents    int64 `json:"paid_cents"`
	PendingCents int64 `json:"pending_cents"`
}

// Summarize folds over the whole filtered set.
func Summarize(list []Payment) Summary {
	var s Summary
	for _, p := range list {
		s.Count++
		switch p.Status {
		case Paid:
			s.Paid++
			s.PaidCents += p.AmountCents
		case Pending:
			s.Pending++
			s.PendingCents += p.AmountCents
		}
	}
	return s
}
