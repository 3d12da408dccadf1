// Package occu evaluates the likelihood of a two-state dynamic occupancy
// model by the forward algorithm.
//
// The model follows a latent binary occupancy state per site across K
// seasons, observed through J repeat surveys per season. Within a season
// the state is held fixed; between seasons an unoccupied site is
// colonized with probability gamma and an occupied site goes extinct
// with probability epsilon. Detection at an occupied site has
// probability p, and a site is initially occupied with probability psi.
//
// Occasions are indexed 0..N-1 with N = J*K. Occasion 0 initializes the
// forward probability vector; the season transition matrix is applied
// when stepping into the first survey of each season after the first,
// and the identity matrix at every other step. The emission matrix B is
// indexed B[state][symbol] with state 0 = unoccupied, 1 = occupied and
// symbol 0 = not detected, 1 = detected; every symbol lookup, including
// the one at occasion 0, goes through the same column accessor.
//
// All four parameters are supplied on the unconstrained logit scale and
// mapped to (0,1) by the logistic function inside the evaluator; nothing
// downstream clamps them. A history that is impossible under the current
// parameters drives the forward vector to zero and the negative
// log-likelihood to +Inf, which is returned as is.
package occu
