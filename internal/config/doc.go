// Package config loads hillclimb run profiles written in HCL.
//
// A profile names the heightmap to read and the search settings to use:
//
//	input       = "input.txt"
//	strategy    = "reverse"   # or "per-start"
//	workers     = 4
//	step_budget = 0           # 0 disables the budget
//	max_depth   = 0           # 0 disables the depth limit
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Every attribute is optional; Merge layers a decoded profile over Default.
package config
