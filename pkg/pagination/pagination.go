package pagination

import "VidTube.com/pkg/constants"

// Param carries caller supplied paging values. Always call Normalize before
// deriving offsets; zero or negative input falls back to the defaults and the
// limit is capped so one request cannot drain a whole table.
type Param struct {
	Page  int64
	Limit int64
}

func (p Param) Normalize() Param {
	if p.Page < 1 {
		p.Page = constants.DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = constants.DefaultLimit
	}
	if p.Limit > constants.MaxLimit {
		p.Limit = constants.MaxLimit
	}
	return p
}

// Offset is applied after filtering and sorting, never before.
func (p Param) Offset() int {
	return int((p.Page - 1) * p.Limit)
}

func (p Param) Size() int {
	return int(p.Limit)
}
