// Package lookup holds the state of the country lookup widget and the rules
// that move it between states.
//
// The state is five holders: the search text, the result list, the selected
// country, the weather report and a shared error. Operations never perform
// I/O. Operations that trigger a fetch return a request carrying a sequence
// token; the caller performs the fetch and hands the outcome back with the
// same token. Outcomes carrying a superseded token are dropped, so a slow
// response can never overwrite state produced by a newer request.
package lookup
