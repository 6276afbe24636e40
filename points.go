// Package points models directional track junctions for a grid-based rail
// simulation.
//
// A Junction has a base arm and two branch arms, each fixed to a world
// Direction. Calling Enter with a vehicle's direction of travel returns the
// direction it leaves in and advances the junction's 0/1 switching state
// according to its JunctionType:
//
//   - Lazy: base arrivals follow the arm a vehicle last arrived from
//   - Sprung: base arrivals always take the default arm
//   - Alternating: base arrivals alternate between the two arms
//   - OneWay: only arm arrivals pass, towards the base
//
// A return of None means the vehicle cannot continue. The only error Enter
// returns for a known junction type is InvalidEntryDirectionError.
package points

// Version of the points module
const Version = "0.3.0"
