// Package montecarlo simulates future stock-price trajectories with a
// Geometric Brownian Motion process and summarizes the simulated
// distribution.
//
// The core functionalities include:
//   - Path Generation: producing a single price trajectory from a parameter
//     set and an explicitly passed random source, using the log-Euler
//     discretization of GBM.
//   - Simulation Runs: generating an ensemble of independent trajectories
//     from one continuing random stream, seeded once per run.
//   - Statistics: aggregating the terminal values of an ensemble into mean,
//     population standard deviation, extrema, and nearest-rank percentiles.
//   - Exports: writing the ensemble and its time grid as flat delimited
//     tables consumed by the chart page.
//
// This package serves as the foundational logic for the `mcs` command-line
// tool. It is a single-run engine: nothing is persisted between runs, and a
// run either completes synchronously or not at all.
package montecarlo
