package storage

type StoreOption func(*FileStore)

// WithPath sets the location of the menu JSON document
func WithPath(path string) StoreOption {
	return func(fs *FileStore) {
		fs.path = path
	}
}

// WithBackup enables a compressed binary snapshot after every save (default: off)
func WithBackup(enabled bool) StoreOption {
	return func(fs *FileStore) {
		fs.backup = enabled
	}
}

// WithBackupPath sets the snapshot location (default: data file path + ".menub")
func WithBackupPath(path string) StoreOption {
	return func(fs *FileStore) {
		fs.backup = true
		fs.backupPath = path
	}
}
