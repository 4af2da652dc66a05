package sessions

import "time"

// TrainingSession is one completed or logged workout. Records are immutable
// once created, only the owner can delete them.
type TrainingSession struct {
	ID              int        `json:"id"`
	UserID          string     `json:"userId"`
	TrainingID      string     `json:"trainingId,omitempty"`
	Name            string     `json:"name,omitempty"`
	Img             string     `json:"img,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	Calories        *int       `json:"calories,omitempty"`
	CreatedBy       string     `json:"createdBy,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// EffectiveTime returns the timestamp used for day bucketing: the start time
// when present, the creation time otherwise. The second return value is false
// when the record has no usable timestamp at all.
func (s TrainingSession) EffectiveTime() (time.Time, bool) {
	if s.StartTime != nil && !s.StartTime.IsZero() {
		return *s.StartTime, true
	}
	if !s.CreatedAt.IsZero() {
		return s.CreatedAt, true
	}
	return time.Time{}, false
}
