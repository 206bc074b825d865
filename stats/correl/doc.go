// Package correl estimates the correlation time of a sampled observable
// and the statistical error of its mean.
//
// The autocorrelation function of the fluctuations y - <y> is computed on
// a subsampled copy of the data, the normalized ACF f(t)/f(0) is modeled
// as exp(-t/tc), and tc is obtained as the integral of the ACF from zero
// to its first root. The error of the mean then follows the standard
// correction for correlated samples (Frenkel & Smit, Understanding
// Molecular Simulation, p. 526): the effective number of independent
// samples is reduced by the correlation time.
package correl
