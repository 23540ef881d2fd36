/*
Package atomicfile replaces a file in one step: data goes to a temporary
file next to the destination which is renamed over it on Close.
If Write or Close fails the temporary file is removed and the destination
keeps its previous content.

	func writeDefinitions(path string, d []byte) error {
		f, err := atomicfile.New(path)
		if err != nil {
			return err
		}
		defer f.RemoveIfNotClosed()

		if _, err = f.Write(d); err != nil {
			return err
		}
		return f.Close()
	}

WriteFile does the above in one call.
*/
package atomicfile
