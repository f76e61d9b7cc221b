/*
Package newick provides facilities for reading and writing trees in the
Newick format. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html. Although,
comments and quoted labels are not implemented.

Parsed nodes remember the exact text they were read from, so a tree can be
edited at the top level and written back without perturbing any untouched
subtree. Branch lengths may be written in decimal or scientific notation.
*/
package newick
