// Package organisms assembles molecules into self-contained surfaces: the
// event card, event lists and the table chat panel.
package organisms
