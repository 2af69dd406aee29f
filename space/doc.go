// Package space provides the spatial quantities: Length, Area and Volume,
// with metric, imperial and astronomical units. Cross-quantity products
// (Length × Length = Area, Area × Length = Volume) and the matching
// divisions are declared here.
package space
