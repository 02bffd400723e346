package booking

// ConfirmResult is the outcome of confirming one reservation in a batch.
type ConfirmResult struct {
	ID          string
	Reservation Reservation
	Err         error
}

// ConfirmAll confirms each reservation in order.  A failure is logged and
// recorded in its result; it does not stop the remaining confirmations.
func (c *Coordinator) ConfirmAll(ids []string) []ConfirmResult {
	results := make([]ConfirmResult, 0, len(ids))
	for _, id := range ids {
		r, err := c.ConfirmReservation(id)
		if err != nil {
			c.log.Error("[booking] batch confirm: item failed", "id", id, "err", err)
		}
		results = append(results, ConfirmResult{ID: id, Reservation: r, Err: err})
	}
	return results
}

// Failed counts the results that carry an error.
func Failed(results []ConfirmResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
