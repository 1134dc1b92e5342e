// Package section implements the KFF section grammar: the Header, the
// Values global-variables table, super-k-mer Blocks (raw and minimizer
// variants), the Raw and Minimizer sections that frame them, and the Index
// section used for random access.
package section
