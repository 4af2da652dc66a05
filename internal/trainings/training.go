package trainings

import "time"

// Training is a reusable workout definition that sessions reference
// through their trainingId.
type Training struct {
	ID          int       `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Img         string    `json:"img,omitempty"`
	Exercises   []string  `json:"exercises,omitempty"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
