// Package report renders posterior results for people: marginal posterior
// plots and draw histograms with gonum.org/v1/plot, and aligned text
// tables of summaries and model runs.
//
// Nothing in the computational packages depends on report; it only reads
// their results.
package report
