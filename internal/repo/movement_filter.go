package repo

import "time"

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

// maxMovementsPage caps the page size of a movement query.
const maxMovementsPage = 100
