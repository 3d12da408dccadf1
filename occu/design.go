package occu

import "errors"

// ErrBadDesign indicates a design with fewer than one season or survey.
var ErrBadDesign = errors.New("occu: seasons and surveys must both be at least 1")

// Design describes the survey layout: K seasons with J repeat surveys
// each, flattened into N = J*K occasions per site.
type Design struct {
	// Number of seasons (primary periods)
	Seasons int
	// Number of repeat surveys within each season
	Surveys int
}

// NewDesign returns a design for the given numbers of seasons and
// surveys per season.
func NewDesign(seasons, surveys int) (Design, error) {
	if seasons < 1 || surveys < 1 {
		return Design{}, ErrBadDesign
	}
	return Design{Seasons: seasons, Surveys: surveys}, nil
}

// Occasions returns the flattened history length N = J*K.
func (d Design) Occasions() int {
	return d.Seasons * d.Surveys
}

// Transition reports whether the season transition matrix applies when
// stepping into occasion t. It does for the first survey of every
// season after the first; all other steps hold the state fixed.
// Occasion 0 is the initialization point and has no incoming step.
func (d Design) Transition(t int) bool {
	return t > 0 && t%d.Surveys == 0
}

// PrimaryOccasions lists the occasions whose incoming step applies the
// season transition matrix.
func (d Design) PrimaryOccasions() []int {
	primary := make([]int, 0, d.Seasons-1)
	for t := 1; t < d.Occasions(); t++ {
		if d.Transition(t) {
			primary = append(primary, t)
		}
	}
	return primary
}

// SecondaryOccasions lists the occasions whose incoming step holds the
// state fixed. Together with PrimaryOccasions these partition 1..N-1.
func (d Design) SecondaryOccasions() []int {
	secondary := make([]int, 0, d.Occasions()-d.Seasons)
	for t := 1; t < d.Occasions(); t++ {
		if !d.Transition(t) {
			secondary = append(secondary, t)
		}
	}
	return secondary
}
