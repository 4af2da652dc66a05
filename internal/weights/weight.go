package weights

import "time"

// WeightRecord is one body weight measurement. Date is the day the user
// assigned to the measurement and may be absent for quick reports.
type WeightRecord struct {
	ID        int        `json:"id"`
	UserID    string     `json:"userId"`
	Weight    float64    `json:"weight"`
	Date      *time.Time `json:"date,omitempty"`
	CreatedBy string     `json:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// EffectiveTime returns the timestamp used for day bucketing: the assigned
// date when present, the creation time otherwise.
func (wr WeightRecord) EffectiveTime() (time.Time, bool) {
	if wr.Date != nil && !wr.Date.IsZero() {
		return *wr.Date, true
	}
	if !wr.CreatedAt.IsZero() {
		return wr.CreatedAt, true
	}
	return time.Time{}, false
}
