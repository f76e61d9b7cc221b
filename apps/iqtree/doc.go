/*
Package iqtree provides convenient wrappers for running IQ-TREE, currently
limited to ModelFinder searches. IQ-TREE must be installed separately:
http://www.iqtree.org.
*/
package iqtree
