// Package elevation maps heightmap symbols to numeric elevation levels and
// defines the climb constraint between neighboring cells.
//
// What:
//
//   - Lowercase letters 'a'..'z' map to levels 0..25.
//   - The start marker 'S' is an alias for the lowest level (Min).
//   - The goal marker 'E' is an alias for the highest level (Max).
//   - Any other byte is rejected with ErrInvalidSymbol.
//
// Climb constraint:
//
//	A step from level a to level b is legal when b <= a+1.
//	Ascent is limited to one level per step; descent is unrestricted.
//
// Complexity: every operation is O(1) and allocation-free.
package elevation
