// Package texfmt formats numbers as LaTeX math text, ready to be stored
// with texvars.
//
//	s, _ := texfmt.Scientific(123456000, 2) // 1.2\times10^{8}
//	s, _ = texfmt.Percentage(0.573, 1, true) // 57\%
package texfmt
