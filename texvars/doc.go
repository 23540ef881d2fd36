// Package texvars stores named values in a LaTeX file of macro definitions
// so that a document can refer to computed results by name.
//
// Each line of the file has the form:
//
//	\newcommand{\<name>}{<value>}
//
// Include the file with \input{vars.tex} and use \<name> in the text.
//
// # Basic Usage
//
//	s := texvars.Open("vars.tex")
//	err := s.Save("totalMass", `5.23\times10^{10}`)
//	...
//	err = s.Delete("oldName")
//
// The file is read on first access and re-written in full after every
// Save and Delete. Entries keep file order, new names are appended.
//
// Names should only use letters, LaTeX doesn't handle digits in macro
// names. This is not checked, see IsValidName.
//
// A Store is not safe for concurrent use and there is no locking between
// processes: the last write wins.
package texvars
