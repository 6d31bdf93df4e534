// Package live hosts observed components over a websocket connection.
//
// Each connection gets its own component instance wrapped with
// observe.Observe. The handler renders, pushes an HTML frame, commits the
// mount, and then re-renders whenever the instance's delivery cell publishes
// a new version token, pushing one frame per committed render. Closing the
// connection unmounts the instance and disposes its reaction.
package live
