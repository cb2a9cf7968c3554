// Package analysis derives descriptive statistics from simulated
// trajectories: strict local-extremum peak/trough detection, average cycle
// periods, predator phase lag, stability classification from coefficients
// of variation, Pearson correlation, an ASCII phase portrait, and an FFT
// power spectrum for cycle-period estimation.
//
// Everything here is a pure function of the input series.
package analysis
