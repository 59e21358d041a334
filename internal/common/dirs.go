package common

// CreateDirectories ensures every path exists, creating missing parents.
// Paths that already exist are left untouched. With verbose set, one record
// is logged per path whether or not it had to be created.
func (f *Files) CreateDirectories(paths []string, verbose bool) error {
	if err := expect("create directories").paths("paths", paths).err(); err != nil {
		return err
	}

	for _, path := range paths {
		if err := f.fs.MkdirAll(path, dirPerm); err != nil {
			return err
		}
		if verbose {
			f.logger.With("path", path).Info("created directory")
		}
	}

	return nil
}
