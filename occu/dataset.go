package occu

import "errors"

// Dataset validation errors.
var (
	ErrNoSites       = errors.New("occu: dataset must contain at least one site")
	ErrHistoryLength = errors.New("occu: history length does not match the design")
	ErrBadSymbol     = errors.New("occu: detection symbols must be 0 or 1")
	ErrWeightLength  = errors.New("occu: weight vector length does not match the number of sites")
	ErrBadWeight     = errors.New("occu: site weights must be positive")
)

// Dataset holds a validated collection of per-site detection histories
// for one survey design. Sites pooled by identical history carry an
// integer weight; otherwise every weight is 1.
type Dataset struct {
	design    Design
	histories [][]int
	weights   []int
}

// NewDataset validates histories against the design and returns a
// dataset. Every history must have length design.Occasions() and
// contain only the symbols 0 and 1. A nil weights slice assigns weight
// 1 to every site; otherwise weights must hold one positive count per
// site.
func NewDataset(design Design, histories [][]int, weights []int) (*Dataset, error) {
	if len(histories) == 0 {
		return nil, ErrNoSites
	}
	n := design.Occasions()
	for _, h := range histories {
		if len(h) != n {
			return nil, ErrHistoryLength
		}
		for _, y := range h {
			if y != 0 && y != 1 {
				return nil, ErrBadSymbol
			}
		}
	}
	if weights == nil {
		weights = make([]int, len(histories))
		for i := range weights {
			weights[i] = 1
		}
	} else {
		if len(weights) != len(histories) {
			return nil, ErrWeightLength
		}
		for _, w := range weights {
			if w < 1 {
				return nil, ErrBadWeight
			}
		}
	}
	return &Dataset{design: design, histories: histories, weights: weights}, nil
}

// Design returns the survey design the histories follow.
func (ds *Dataset) Design() Design {
	return ds.design
}

// Sites returns the number of (pooled) sites.
func (ds *Dataset) Sites() int {
	return len(ds.histories)
}

// History returns the detection history of site i.
func (ds *Dataset) History(i int) []int {
	return ds.histories[i]
}

// Weight returns the number of sites sharing history i.
func (ds *Dataset) Weight(i int) int {
	return ds.weights[i]
}
