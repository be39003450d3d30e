// Package handlers contains one formatting handler per node kind of the
// document dialect. Each handler registers itself from init(), so importing
// this package (usually as a blank import from the CLI binary) makes the
// full closed kind set available to the dispatcher.
//
// Handlers decide both what to emit and who walks the node's children: a
// handler either recurses into selected children itself and reports
// Handled, or hands the child list back to the driver with ContinueInto.
package handlers
