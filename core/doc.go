// Package core holds process-wide plumbing shared by the engine and the front end
package core
