// Package core defines the vocabulary shared by the teelog packages.
//
// Level is a closed set of six tags (INFO, WARN, ERROR, FATAL, DEBUG,
// TRACE). Each level maps through a static table to its tag text and
// the ANSI sequence used when the tag is colored. Levels are labels
// only: they carry no severity ordering and nothing filters on them.
//
// Clock abstracts the wall-clock read so tests can pin the timestamp
// printed in the header. SplitTime performs the seconds/nanoseconds
// decomposition the header is rendered from.
package core
