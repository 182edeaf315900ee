package funding

import "github.com/Dias221467/Giftwish/internal/models"

// ListSummary counts item states across a wishlist.
type ListSummary struct {
	Items        int `json:"items"`
	Completed    int `json:"completed"`
	Overfunded   int `json:"overfunded"`
	ZeroGoal     int `json:"zero_goal"`
	FlagMismatch int `json:"flag_mismatch"`
	Contributors int `json:"contributors"`
}

// Summary walks the items of w once.
func Summary(w models.Wishlist) ListSummary {
	s := ListSummary{Items: len(w.Items)}
	for _, item := range w.Items {
		s.Contributors += item.Contributors
		if item.Completed() {
			s.Completed++
		}
		if item.FlagMismatch() {
			s.FlagMismatch++
		}
		if item.GoalAmount.IsZero() {
			s.ZeroGoal++
			continue
		}
		if item.CurrentAmount.GreaterThan(item.GoalAmount) {
			s.Overfunded++
		}
	}
	return s
}
